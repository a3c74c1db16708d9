// Package calendar_help 在 lunar 转换之上加一层服务：日志、按月缓存和整年并发计算
package calendar_help

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gitlab.com/aiku-open-source/go-calendar/src/core/compare"
	"gitlab.com/aiku-open-source/go-calendar/src/core/contextx"
	"gitlab.com/aiku-open-source/go-calendar/src/core/gofunc"
	"gitlab.com/aiku-open-source/go-calendar/src/core/hotfix"
	"gitlab.com/aiku-open-source/go-calendar/src/core/logger"
	"gitlab.com/aiku-open-source/go-calendar/src/core/lunar"
)

const (
	defaultWriteTimeout = 3 * time.Second
	defaultLockExpire   = time.Minute
	monthsPerYear       = 12
)

var (
	ErrNoCache        = errors.New("month cache is not configured")
	ErrWarmUpRunning  = errors.New("warmup of this year is already running")
	ErrInvalidPayload = errors.New("invalid month cache payload")
)

// Converter 农历转换，默认是 lunar.Converter
type Converter interface {
	SolarToLunar(year, month, day int) (lunar.LunarDate, error)
	LunarToSolar(year, month, day int) (lunar.SolarDate, error)
	SolarToLunarString(solar string) (string, error)
	LunarToSolarString(lunarDate string) (string, error)
	SolarMonth(year, month int) ([]lunar.DayEntry, error)
	Year(year int) (lunar.YearInfo, error)
}

// MonthStore 月份缓存，redis_help.MonthCache 实现了它
type MonthStore interface {
	Get(ctx context.Context, year, month int) ([]byte, bool, error)
	Set(ctx context.Context, year, month int, payload []byte) error
}

// yearLocker 缓存如果支持加锁，预热时会先拿锁
type yearLocker interface {
	TryLockYear(ctx context.Context, year int, expire time.Duration) (string, bool, error)
	UnlockYear(ctx context.Context, year int, token string) (bool, error)
}

type Option func(*Service)

func WithConverter(c Converter) Option {
	return func(s *Service) {
		if !compare.IsNil(c) {
			s.converter = c
		}
	}
}

// WithCache 设置月份缓存，nil 表示不使用缓存
func WithCache(store MonthStore) Option {
	return func(s *Service) {
		if compare.IsNil(store) {
			s.cache = nil
			return
		}
		s.cache = store
	}
}

// WithWriteTimeout 后台写缓存的超时
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// Service 日历服务，可在多个协程间共享
type Service struct {
	converter    Converter
	cache        MonthStore
	writeTimeout time.Duration

	pending sync.WaitGroup
}

func NewService(opts ...Option) *Service {
	s := &Service{
		converter:    lunar.NewConverter(),
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheEnabled 是否配置了缓存
func (s *Service) CacheEnabled() bool {
	return s.cache != nil
}

func (s *Service) SolarToLunar(year, month, day int) (lunar.LunarDate, error) {
	d, err := s.converter.SolarToLunar(year, month, day)
	if err != nil {
		logger.Log.Debugf("solar to lunar %d-%d-%d: %v", year, month, day, err)
	}
	return d, err
}

func (s *Service) LunarToSolar(year, month, day int) (lunar.SolarDate, error) {
	d, err := s.converter.LunarToSolar(year, month, day)
	if err != nil {
		logger.Log.Debugf("lunar to solar %d-%d-%d: %v", year, month, day, err)
	}
	return d, err
}

func (s *Service) SolarToLunarString(solar string) (string, error) {
	got, err := s.converter.SolarToLunarString(solar)
	if err != nil {
		logger.Log.Debugf("solar to lunar %q: %v", solar, err)
	}
	return got, err
}

func (s *Service) LunarToSolarString(lunarDate string) (string, error) {
	got, err := s.converter.LunarToSolarString(lunarDate)
	if err != nil {
		logger.Log.Debugf("lunar to solar %q: %v", lunarDate, err)
	}
	return got, err
}

// YearInfo 农历年汇总
func (s *Service) YearInfo(year int) (lunar.YearInfo, error) {
	info, err := s.converter.Year(year)
	if err != nil {
		logger.Log.Debugf("year info %d: %v", year, err)
	}
	return info, err
}

// SolarMonth 公历整月的农历对照，先读缓存；未命中时计算后在后台写回缓存。
// 缓存读失败只记日志，不影响结果
func (s *Service) SolarMonth(ctx context.Context, year, month int) ([]lunar.DayEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.cache != nil {
		entries, ok := s.readMonth(ctx, year, month)
		if ok {
			return entries, nil
		}
	}

	entries, err := s.converter.SolarMonth(year, month)
	if err != nil {
		logger.Log.Debugf("solar month %d-%d: %v", year, month, err)
		return nil, err
	}
	if s.cache != nil {
		s.writeMonthAsync(ctx, year, month, entries)
	}
	return entries, nil
}

func (s *Service) readMonth(ctx context.Context, year, month int) ([]lunar.DayEntry, bool) {
	payload, ok, err := s.cache.Get(ctx, year, month)
	if err != nil {
		logger.Log.Warningf("read month cache %d-%d: %v", year, month, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	entries, err := decodeMonth(payload)
	if err != nil {
		logger.Log.Warningf("decode month cache %d-%d: %v", year, month, err)
		return nil, false
	}
	return entries, true
}

// writeMonthAsync 调用方的 ctx 结束后写入仍会完成，只受 writeTimeout 限制
func (s *Service) writeMonthAsync(ctx context.Context, year, month int, entries []lunar.DayEntry) {
	payload, err := json.Marshal(entries)
	if err != nil {
		logger.Log.Warningf("encode month %d-%d: %v", year, month, err)
		return
	}
	s.pending.Add(1)
	gofunc.CoroutineWithTimeOut(contextx.Detach(ctx), s.writeTimeout, func(timeoutCtx context.Context) {
		defer s.pending.Done()
		if err := s.cache.Set(timeoutCtx, year, month, payload); err != nil {
			logger.Log.Warningf("write month cache %d-%d: %v", year, month, err)
		}
	})
}

// Wait 等待后台缓存写入完成，进程退出前调用
func (s *Service) Wait() {
	s.pending.Wait()
}

func decodeMonth(payload []byte) ([]lunar.DayEntry, error) {
	var entries []lunar.DayEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(entries) == 0 {
		return nil, ErrInvalidPayload
	}
	return entries, nil
}

// SolarYear 公历一年12个月并发计算，任何一个月失败则整体失败
func (s *Service) SolarYear(ctx context.Context, year int) ([][]lunar.DayEntry, error) {
	result := make([][]lunar.DayEntry, monthsPerYear)
	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < monthsPerYear; i++ {
		month := i + 1
		g.Go(func() (err error) {
			defer hotfix.RecoverToError(&err)

			entries, err := s.SolarMonth(gCtx, year, month)
			if err != nil {
				return err
			}
			result[month-1] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// WarmUp 把公历某年各月写入缓存，返回写入的月数。
// 超出支持范围的月份(如1891年1月)跳过；缓存支持加锁时同一年同时只有一个预热
func (s *Service) WarmUp(ctx context.Context, year int) (int, error) {
	if s.cache == nil {
		return 0, ErrNoCache
	}
	if year < lunar.MinYear || year > lunar.MaxYear {
		return 0, lunar.ErrYearOutOfRange
	}

	if locker, ok := s.cache.(yearLocker); ok {
		token, locked, err := locker.TryLockYear(ctx, year, defaultLockExpire)
		if err != nil {
			return 0, err
		}
		if !locked {
			return 0, ErrWarmUpRunning
		}
		defer func() {
			released, err := locker.UnlockYear(contextx.Detach(ctx), year, token)
			if err != nil {
				logger.Log.Warningf("unlock warmup %d: %v", year, err)
				return
			}
			if !released {
				logger.Log.Warningf("warmup lock of %d expired before the warmup finished", year)
			}
		}()
	}

	var (
		mu      sync.Mutex
		written int
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for month := 1; month <= monthsPerYear; month++ {
		month := month
		g.Go(func() (err error) {
			defer hotfix.RecoverToError(&err)

			entries, err := s.converter.SolarMonth(year, month)
			if errors.Is(err, lunar.ErrDateRange) {
				logger.Log.Debugf("warmup skip %d-%d: %v", year, month, err)
				return nil
			}
			if err != nil {
				return err
			}
			payload, err := json.Marshal(entries)
			if err != nil {
				return err
			}
			if err := s.cache.Set(gCtx, year, month, payload); err != nil {
				return err
			}
			mu.Lock()
			written++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return written, err
	}
	logger.Log.Infof("warmup %d: %d months cached", year, written)
	return written, nil
}
