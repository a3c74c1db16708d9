package redis_help

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type DataRedis struct {
	Alias        string   `json:"alias,omitempty" yaml:"alias"`
	Address      string   `json:"address,omitempty" yaml:"address"` // 多个地址用逗号分隔
	Password     string   `json:"password,omitempty" yaml:"password"`
	DB           int      `json:"db,omitempty" yaml:"db"`
	IsCluster    bool     `json:"is_cluster,omitempty" yaml:"is_cluster"`
	ReadTimeout  Duration `json:"read_timeout,omitempty" yaml:"read_timeout"`   // 秒
	WriteTimeout Duration `json:"write_timeout,omitempty" yaml:"write_timeout"` // 秒
}

// Duration 以秒计
type Duration time.Duration

func (d Duration) seconds() time.Duration {
	return time.Second * time.Duration(d)
}

// NewRedis Initialize redis connection.
func NewRedis(config *DataRedis) (redis.UniversalClient, error) {
	if config == nil || len(strings.TrimSpace(config.Address)) == 0 {
		return nil, errors.New("redis address is empty")
	}
	var rdb redis.UniversalClient
	maxRetry, minIdleConns, maxIdleConns, poolSize := 3, 2, 10, 20
	var address []string
	for _, addr := range strings.Split(config.Address, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			address = append(address, addr)
		}
	}
	if len(address) == 0 {
		return nil, errors.New("redis address is empty")
	}

	if config.IsCluster {
		rdb = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        address,
			Password:     config.Password,
			PoolSize:     poolSize,
			MaxIdleConns: maxIdleConns,
			MinIdleConns: minIdleConns,
			MaxRetries:   maxRetry,
			ReadTimeout:  config.ReadTimeout.seconds(),
			WriteTimeout: config.WriteTimeout.seconds(),
		})
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:         address[0],
			Password:     config.Password,
			DB:           config.DB,
			PoolSize:     poolSize, // connection pool size
			MaxIdleConns: maxIdleConns,
			MinIdleConns: minIdleConns,
			MaxRetries:   maxRetry,
			ReadTimeout:  config.ReadTimeout.seconds(),
			WriteTimeout: config.WriteTimeout.seconds(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", address[0], err)
	}
	return rdb, nil
}

// RegisterCache 按别名创建多个连接，任意一个失败时关闭已创建的连接
func RegisterCache(configs []DataRedis) (map[string]redis.UniversalClient, error) {

	handlers := map[string]redis.UniversalClient{}
	closeAll := func() {
		for _, h := range handlers {
			_ = h.Close()
		}
	}
	for _, v := range configs {
		if len(v.Address) == 0 || v.Alias == "" {
			closeAll()
			return nil, fmt.Errorf("the Address or alias of %s not exist", v.Alias)
		}

		h, err := NewRedis(&v)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("connect to Redis %s failed: %w", v.Alias, err)
		}

		handlers[v.Alias] = h
	}
	return handlers, nil
}
