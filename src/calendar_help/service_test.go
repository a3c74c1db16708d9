package calendar_help

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"gitlab.com/aiku-open-source/go-calendar/src/core/lunar"
	"gitlab.com/aiku-open-source/go-calendar/src/redis_help"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRedisCache(t *testing.T) (*miniredis.Miniredis, *redis_help.MonthCache) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache, err := redis_help.NewMonthCache(client, redis_help.MonthCacheConfig{Prefix: "calendar", TTL: time.Hour})
	require.NoError(t, err)
	return s, cache
}

// memoryStore 记录读写次数的内存缓存
type memoryStore struct {
	mu     sync.Mutex
	data   map[int][]byte
	gets   int
	sets   int
	getErr error
	setErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[int][]byte{}}
}

func (m *memoryStore) Get(_ context.Context, year, month int) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[year*100+month]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, year, month int, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[year*100+month] = payload
	return nil
}

func (m *memoryStore) stats() (gets, sets int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets, m.sets
}

// panicConverter SolarMonth 会 panic
type panicConverter struct {
	*lunar.Converter
}

func (panicConverter) SolarMonth(year, month int) ([]lunar.DayEntry, error) {
	if month == 6 {
		panic("broken table")
	}
	return lunar.SolarMonth(year, month)
}

func TestServiceConversions(t *testing.T) {
	s := NewService()
	assert.False(t, s.CacheEnabled())

	got, err := s.SolarToLunarString("1988-07-03")
	require.NoError(t, err)
	assert.Equal(t, "1988-05-20", got)

	got, err = s.LunarToSolarString("2023-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2023-03-23", got)

	d, err := s.SolarToLunar(2024, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, "二零二四年正月初一", d.Chinese())

	solar, err := s.LunarToSolar(2020, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, lunar.SolarDate{Year: 2020, Month: 6, Day: 1}, solar)

	_, err = s.SolarToLunarString("1988/07/03")
	assert.ErrorIs(t, err, lunar.ErrDateFormat)
	_, err = s.LunarToSolar(2024, 13, 1)
	assert.ErrorIs(t, err, lunar.ErrMonthOutOfRange)

	info, err := s.YearInfo(2023)
	require.NoError(t, err)
	assert.Equal(t, 2, info.LeapMonth)
	assert.Equal(t, "闰二月", info.LeapMonthName)
	assert.Len(t, info.Months, 13)
	assert.Equal(t, lunar.SolarDate{Year: 2023, Month: 1, Day: 22}, info.NewYear)

	_, err = s.YearInfo(2101)
	assert.ErrorIs(t, err, lunar.ErrYearOutOfRange)
}

func TestServiceNilOptions(t *testing.T) {
	var typedNil *redis_help.MonthCache
	s := NewService(WithConverter(nil), WithCache(typedNil), WithWriteTimeout(0))
	assert.False(t, s.CacheEnabled())
	assert.NotNil(t, s.converter)
	assert.Equal(t, defaultWriteTimeout, s.writeTimeout)
}

func TestSolarMonthWithoutCache(t *testing.T) {
	s := NewService()
	entries, err := s.SolarMonth(context.Background(), 2024, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 29)
	assert.Equal(t, "2024-2-10", entries[9].Solar)
	assert.Equal(t, "2024-01-01", entries[9].Lunar.String())

	_, err = s.SolarMonth(context.Background(), 2024, 13)
	assert.ErrorIs(t, err, lunar.ErrSolarDate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.SolarMonth(ctx, 2024, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolarMonthReadThrough(t *testing.T) {
	mr, cache := newRedisCache(t)
	s := NewService(WithCache(cache))
	ctx := context.Background()

	want, err := lunar.SolarMonth(2023, 3)
	require.NoError(t, err)

	got, err := s.SolarMonth(ctx, 2023, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	s.Wait()
	assert.True(t, mr.Exists("calendar:month:2023-03"))
	assert.Equal(t, time.Hour, mr.TTL("calendar:month:2023-03"))

	got, err = s.SolarMonth(ctx, 2023, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSolarMonthCacheHit(t *testing.T) {
	store := newMemoryStore()
	s := NewService(WithCache(store))
	ctx := context.Background()

	fake := []lunar.DayEntry{{Solar: "2024-2-1", Lunar: lunar.LunarDate{Year: 2000, Month: 1, Day: 1}}}
	payload, err := json.Marshal(fake)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, 2024, 2, payload))

	got, err := s.SolarMonth(ctx, 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, fake, got)

	s.Wait()
	gets, sets := store.stats()
	assert.Equal(t, 1, gets)
	assert.Equal(t, 1, sets)
}

func TestSolarMonthBackgroundWriteOutlivesRequest(t *testing.T) {
	store := newMemoryStore()
	s := NewService(WithCache(store))

	ctx, cancel := context.WithCancel(context.Background())
	_, err := s.SolarMonth(ctx, 2024, 2)
	require.NoError(t, err)
	cancel()

	assert.Eventually(t, func() bool {
		_, sets := store.stats()
		return sets == 1
	}, time.Second, 10*time.Millisecond)
	s.Wait()

	payload, ok, err := store.Get(context.Background(), 2024, 2)
	require.NoError(t, err)
	require.True(t, ok)
	entries, err := decodeMonth(payload)
	require.NoError(t, err)
	assert.Len(t, entries, 29)
}

func TestSolarMonthCacheFailure(t *testing.T) {
	tests := []struct {
		name  string
		store *memoryStore
		seed  []byte
	}{
		{
			name:  "read error",
			store: &memoryStore{data: map[int][]byte{}, getErr: errors.New("connection refused")},
		},
		{
			name:  "write error",
			store: &memoryStore{data: map[int][]byte{}, setErr: errors.New("connection refused")},
		},
		{
			name:  "broken payload",
			store: newMemoryStore(),
			seed:  []byte("{not json"),
		},
		{
			name:  "empty payload",
			store: newMemoryStore(),
			seed:  []byte("[]"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.seed != nil {
				tt.store.data[202402] = tt.seed
			}
			s := NewService(WithCache(tt.store))
			got, err := s.SolarMonth(context.Background(), 2024, 2)
			s.Wait()
			require.NoError(t, err)
			assert.Len(t, got, 29)
		})
	}
}

func TestSolarYear(t *testing.T) {
	s := NewService()
	months, err := s.SolarYear(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, months, 12)
	total := 0
	for i, entries := range months {
		assert.Equal(t, "2024-"+strconv.Itoa(i+1)+"-1", entries[0].Solar)
		total += len(entries)
	}
	assert.Equal(t, 366, total)

	// 1891年1月超出范围
	_, err = s.SolarYear(context.Background(), 1891)
	assert.ErrorIs(t, err, lunar.ErrDateRange)
}

func TestSolarYearPanic(t *testing.T) {
	s := NewService(WithConverter(panicConverter{lunar.NewConverter()}))
	_, err := s.SolarYear(context.Background(), 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken table")
}

func TestWarmUp(t *testing.T) {
	mr, cache := newRedisCache(t)
	s := NewService(WithCache(cache))
	ctx := context.Background()

	n, err := s.WarmUp(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	for _, key := range []string{"calendar:month:2024-01", "calendar:month:2024-06", "calendar:month:2024-12"} {
		assert.True(t, mr.Exists(key), key)
	}
	assert.False(t, mr.Exists("calendar:warmup:2024"))

	raw, err := mr.Get("calendar:month:2024-02")
	require.NoError(t, err)
	entries, err := decodeMonth([]byte(raw))
	require.NoError(t, err)
	assert.Len(t, entries, 29)

	// 1891年1、2月含有超出范围的日期，跳过
	n, err = s.WarmUp(ctx, 1891)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.False(t, mr.Exists("calendar:month:1891-02"))
	assert.True(t, mr.Exists("calendar:month:1891-03"))

	// 2100年只有1月在范围内
	n, err = s.WarmUp(ctx, 2100)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWarmUpErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewService().WarmUp(ctx, 2024)
	assert.ErrorIs(t, err, ErrNoCache)

	mr, cache := newRedisCache(t)
	s := NewService(WithCache(cache))

	_, err = s.WarmUp(ctx, 1890)
	assert.ErrorIs(t, err, lunar.ErrYearOutOfRange)

	require.NoError(t, mr.Set("calendar:warmup:2024", "1"))
	_, err = s.WarmUp(ctx, 2024)
	assert.ErrorIs(t, err, ErrWarmUpRunning)
	assert.False(t, mr.Exists("calendar:month:2024-01"))
	// 别人持有的锁不会被释放
	held, err := mr.Get("calendar:warmup:2024")
	require.NoError(t, err)
	assert.Equal(t, "1", held)

	store := &memoryStore{data: map[int][]byte{}, setErr: errors.New("read only")}
	_, err = NewService(WithCache(store)).WarmUp(ctx, 2024)
	assert.EqualError(t, err, "read only")
}
