package zap_help

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 按级别构建 zap.Logger，development 为 true 时使用控制台格式并带调用栈
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build()
}

// NewLogger returns a new Logger.
//
// By default, Loggers info at zap's InfoLevel.
func NewLogger(l *zap.Logger) *Logger {
	logger := &Logger{
		log: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
	return logger
}

// Logger adapts zap's Logger to be compatible with logger.LoggerV2.
type Logger struct {
	log *zap.SugaredLogger
}

// Debug implements logger.LoggerV2.
func (l *Logger) Debug(args ...interface{}) {
	l.log.Debugln(args...)
}

// Debugf implements logger.LoggerV2.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Info implements logger.LoggerV2.
func (l *Logger) Info(args ...interface{}) {
	l.log.Infoln(args...)
}

// Infof implements logger.LoggerV2.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Warning implements logger.LoggerV2.
func (l *Logger) Warning(args ...interface{}) {
	l.log.Warnln(args...)
}

// Warningf implements logger.LoggerV2.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error implements logger.LoggerV2.
func (l *Logger) Error(args ...interface{}) {
	l.log.Errorln(args...)
}

// Errorf implements logger.LoggerV2.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Fatal implements logger.LoggerV2.
func (l *Logger) Fatal(args ...interface{}) {
	l.log.Fatalln(args...)
}

// Fatalf implements logger.LoggerV2.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.log.Sync()
}
