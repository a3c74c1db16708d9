package redis_help

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"gitlab.com/aiku-open-source/go-calendar/src/core/compare"
)

// MonthCache 按公历月缓存农历对照表，值由调用方序列化
type MonthCache struct {
	client redis.UniversalClient
	prefix string        // 私有配置：key 前缀
	ttl    time.Duration // 私有配置：过期时间
}

// MonthCacheConfig 缓存配置（仅用于初始化）
type MonthCacheConfig struct {
	Prefix string        // key 前缀，如 calendar
	TTL    time.Duration // 过期时间
}

// NewMonthCache 创建月份缓存（在初始化时完成所有检查）
func NewMonthCache(client redis.UniversalClient, config MonthCacheConfig) (*MonthCache, error) {
	if compare.IsNil(client) {
		return nil, errors.New("redis client cannot be nil")
	}
	prefix := strings.TrimSpace(config.Prefix)
	if prefix == "" {
		return nil, errors.New("prefix cannot be empty")
	}
	if config.TTL <= 0 {
		return nil, errors.New("ttl must be greater than 0")
	}
	return &MonthCache{
		client: client,
		prefix: strings.TrimSuffix(prefix, ":"),
		ttl:    config.TTL,
	}, nil
}

// Key <prefix>:month:<YYYY>-<MM>
func (c *MonthCache) Key(year, month int) string {
	return fmt.Sprintf("%s:month:%04d-%02d", c.prefix, year, month)
}

func (c *MonthCache) lockKey(year int) string {
	return fmt.Sprintf("%s:warmup:%04d", c.prefix, year)
}

// Get 未命中时返回 (nil, false, nil)
func (c *MonthCache) Get(ctx context.Context, year, month int) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.Key(year, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get month cache: %w", err)
	}
	return payload, true, nil
}

// Set 写入并设置过期时间
func (c *MonthCache) Set(ctx context.Context, year, month int, payload []byte) error {
	if err := c.client.Set(ctx, c.Key(year, month), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set month cache: %w", err)
	}
	return nil
}

// Delete 删除某月缓存，key 不存在不算错误
func (c *MonthCache) Delete(ctx context.Context, year, month int) error {
	if err := c.client.Del(ctx, c.Key(year, month)).Err(); err != nil {
		return fmt.Errorf("failed to delete month cache: %w", err)
	}
	return nil
}

// TTL 剩余过期时间，key 不存在时为负数（与 redis 的 -2 语义一致）
func (c *MonthCache) TTL(ctx context.Context, year, month int) (time.Duration, error) {
	ttl, err := c.client.TTL(ctx, c.Key(year, month)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get month cache ttl: %w", err)
	}
	return ttl, nil
}

// unlockScript 只删除自己持有的锁，锁过期后被别人拿到时不动
const unlockScript = `
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`

// TryLockYear 预热某年前加锁，防止多个进程同时预热同一年。
// 拿到锁时返回本次持有的 token，释放时要带上
func (c *MonthCache) TryLockYear(ctx context.Context, year int, expire time.Duration) (string, bool, error) {
	if expire < time.Second {
		expire = time.Second
	}
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, c.lockKey(year), token, expire).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to lock warmup: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// UnlockYear 释放预热锁，token 不匹配(锁已过期或被别人持有)时返回 false
func (c *MonthCache) UnlockYear(ctx context.Context, year int, token string) (bool, error) {
	n, err := c.client.Eval(ctx, unlockScript, []string{c.lockKey(year)}, token).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to unlock warmup: %w", err)
	}
	return n == 1, nil
}
