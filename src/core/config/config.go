package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"gitlab.com/aiku-open-source/go-calendar/src/redis_help"
)

// 环境变量，优先级高于配置文件
const (
	EnvLogLevel     = "CALENDAR_LOG_LEVEL"
	EnvLogDev       = "CALENDAR_LOG_DEV"
	EnvRedisAddr    = "CALENDAR_REDIS_ADDR"
	EnvRedisCluster = "CALENDAR_REDIS_CLUSTER"
	EnvCacheTTL     = "CALENDAR_CACHE_TTL"
	EnvCachePrefix  = "CALENDAR_CACHE_PREFIX"
)

const (
	DefaultLogLevel    = "info"
	DefaultCacheTTL    = 24 * time.Hour
	DefaultCachePrefix = "calendar"
)

type Config struct {
	Log   LogConfig            `yaml:"log"`
	Redis redis_help.DataRedis `yaml:"redis"`
	Cache CacheConfig          `yaml:"cache"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type CacheConfig struct {
	TTL    time.Duration `yaml:"ttl"` // 如 24h、30m
	Prefix string        `yaml:"prefix"`
}

// Default 默认配置，没有 redis 地址时不启用缓存
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: DefaultLogLevel},
		Cache: CacheConfig{
			TTL:    DefaultCacheTTL,
			Prefix: DefaultCachePrefix,
		},
	}
}

// Load 依次读取默认值、YAML 文件(path 为空则跳过)、.env 文件和环境变量，最后校验
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles 不覆盖已存在的环境变量，文件不存在时忽略
func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogDev); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogDev, err)
		}
		c.Log.Development = b
	}
	if v, ok := lookup(EnvRedisAddr); ok {
		c.Redis.Address = v
	}
	if v, ok := lookup(EnvRedisCluster); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisCluster, err)
		}
		c.Redis.IsCluster = b
	}
	if v, ok := lookup(EnvCacheTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheTTL, err)
		}
		c.Cache.TTL = d
	}
	if v, ok := lookup(EnvCachePrefix); ok {
		c.Cache.Prefix = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Validate 检查日志级别和缓存配置
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl cannot be negative: %s", c.Cache.TTL)
	}
	if c.CacheEnabled() {
		if c.Cache.TTL == 0 {
			return errors.New("cache ttl must be greater than 0")
		}
		if strings.TrimSpace(c.Cache.Prefix) == "" {
			return errors.New("cache prefix cannot be empty")
		}
	}
	return nil
}

// CacheEnabled 配置了 redis 地址才启用缓存
func (c *Config) CacheEnabled() bool {
	return strings.TrimSpace(c.Redis.Address) != ""
}
