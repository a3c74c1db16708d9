// Package cli lunar 命令行：公历农历互转、月历对照、农历年信息和缓存预热
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.com/aiku-open-source/go-calendar/src/calendar_help"
	"gitlab.com/aiku-open-source/go-calendar/src/core/config"
	"gitlab.com/aiku-open-source/go-calendar/src/core/logger"
	"gitlab.com/aiku-open-source/go-calendar/src/core/logger/zap_help"
	"gitlab.com/aiku-open-source/go-calendar/src/core/lunar"
	"gitlab.com/aiku-open-source/go-calendar/src/redis_help"
)

type app struct {
	configPath string
	envFile    string
	verbose    bool
	asJSON     bool

	cfg     *config.Config
	service *calendar_help.Service
	closers []func() error
}

// NewRootCmd 每次调用返回一棵新的命令树，测试之间互不影响
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lunar",
		Short: "农历(1891-2100)与公历互转",
		Long: `lunar 在农历和公历之间转换日期，支持农历1891年正月初一到2100年正月初一。

农历日期写作 YYYY-MM-DD，月份按位置计：有闰月的年份闰月占一位，
例如2023年闰二月初二写作 2023-03-02。`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML 配置文件")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "环境变量文件，不存在时忽略")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "输出 debug 日志")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "以 JSON 输出")

	root.AddCommand(
		a.solarCmd(),
		a.lunarCmd(),
		a.monthCmd(),
		a.yearCmd(),
		a.warmupCmd(),
	)
	return root
}

// Execute 运行命令并返回进程退出码
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, formatError(err))
		return 1
	}
	return 0
}

func formatError(err error) string {
	var calErr *lunar.Error
	if errors.As(err, &calErr) {
		return fmt.Sprintf("Error: %s %s", calErr.Code.Name(), calErr.Error())
	}
	return "Error: " + err.Error()
}

// setup 读配置、初始化日志和服务，配置了 redis 时启用月份缓存
func (a *app) setup(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	zl, err := zap_help.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	zapLogger := zap_help.NewLogger(zl)
	logger.SetLoggerV2(zapLogger)
	a.closers = append(a.closers, func() error {
		logger.SetLoggerV2(nil)
		_ = zapLogger.Sync()
		return nil
	})

	opts := []calendar_help.Option{}
	if cfg.CacheEnabled() {
		client, err := redis_help.NewRedis(&cfg.Redis)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, client.Close)
		cache, err := redis_help.NewMonthCache(client, redis_help.MonthCacheConfig{
			Prefix: cfg.Cache.Prefix,
			TTL:    cfg.Cache.TTL,
		})
		if err != nil {
			return err
		}
		opts = append(opts, calendar_help.WithCache(cache))
		zl.Debug("month cache enabled", zap.String("prefix", cfg.Cache.Prefix), zap.Duration("ttl", cfg.Cache.TTL))
	}
	a.service = calendar_help.NewService(opts...)
	return nil
}

// runE 命令结束后等待后台缓存写入，再关闭连接
func (a *app) runE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return f(cmd, args)
	}
}

func (a *app) close() {
	if a.service != nil {
		a.service.Wait()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Log.Warningf("close: %v", err)
		}
	}
	a.closers = nil
}

func (a *app) printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
