package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogLevel, EnvLogDev, EnvRedisAddr, EnvRedisCluster, EnvCacheTTL, EnvCachePrefix} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefault(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "calendar.yaml", `
log:
  level: debug
  development: true
redis:
  address: 127.0.0.1:6379
  db: 2
  read_timeout: 3
cache:
  ttl: 30m
  prefix: lunar
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Address)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.EqualValues(t, 3, cfg.Redis.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "lunar", cfg.Cache.Prefix)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadEnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "calendar.yaml", "log:\n  level: debug\ncache:\n  ttl: 30m\n")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvRedisAddr, "10.0.0.1:6379,10.0.0.2:6379")
	t.Setenv(EnvRedisCluster, "true")
	t.Setenv(EnvCacheTTL, "2h")
	t.Setenv(EnvCachePrefix, "cal")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "10.0.0.1:6379,10.0.0.2:6379", cfg.Redis.Address)
	assert.True(t, cfg.Redis.IsCluster)
	assert.Equal(t, 2*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "cal", cfg.Cache.Prefix)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvCachePrefix)
	os.Unsetenv(EnvLogDev)
	envFile := writeFile(t, ".env", "CALENDAR_CACHE_PREFIX=from_file\nCALENDAR_LOG_DEV=true\n")
	t.Cleanup(func() {
		os.Unsetenv(EnvCachePrefix)
		os.Unsetenv(EnvLogDev)
	})

	cfg, err := Load("", envFile, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.Cache.Prefix)
	assert.True(t, cfg.Log.Development)
}

func TestLoadError(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr bool
	}{
		{name: "invalid log level", yaml: "log:\n  level: loud\n", wantErr: true},
		{name: "negative ttl", yaml: "cache:\n  ttl: -1h\n", wantErr: true},
		{name: "zero ttl with redis", yaml: "redis:\n  address: 127.0.0.1:6379\ncache:\n  ttl: 0s\n", wantErr: true},
		{name: "broken yaml", yaml: "log: [", wantErr: true},
		{name: "bad bool env", env: map[string]string{EnvRedisCluster: "maybe"}, wantErr: true},
		{name: "bad ttl env", env: map[string]string{EnvCacheTTL: "soon"}, wantErr: true},
		{name: "zero ttl without redis", yaml: "cache:\n  ttl: 0s\n", wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.yaml != "" {
				path = writeFile(t, "calendar.yaml", tt.yaml)
			}
			_, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
