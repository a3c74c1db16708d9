// Package logger represents a generic logging interface

package logger

// Log is a package level variable, every program should access logging function through "Log".
// It defaults to a logger that drops everything, so library code can log without nil checks.
var Log LoggerV2 = Discard

type LoggerV2 interface {
	// Debug logs to DEBUG log. Arguments are handled in the manner of fmt.Print.
	Debug(args ...interface{})
	// Debugf logs to DEBUG log. Arguments are handled in the manner of fmt.Printf.
	Debugf(format string, args ...interface{})
	// Info logs to INFO log. Arguments are handled in the manner of fmt.Print.
	Info(args ...interface{})
	// Infof logs to INFO log. Arguments are handled in the manner of fmt.Printf.
	Infof(format string, args ...interface{})
	// Warning logs to WARNING log. Arguments are handled in the manner of fmt.Print.
	Warning(args ...interface{})
	// Warningf logs to WARNING log. Arguments are handled in the manner of fmt.Printf.
	Warningf(format string, args ...interface{})
	// Error logs to ERROR log. Arguments are handled in the manner of fmt.Print.
	Error(args ...interface{})
	// Errorf logs to ERROR log. Arguments are handled in the manner of fmt.Printf.
	Errorf(format string, args ...interface{})
	// Fatal logs to ERROR log. Arguments are handled in the manner of fmt.Print.
	Fatal(args ...interface{})
	// Fatalf logs to ERROR log. Arguments are handled in the manner of fmt.Printf.
	Fatalf(format string, args ...interface{})
}

// SetLoggerV2 is the setter for log variable, it should be the only way to assign value to log.
// A nil logger resets Log to Discard.
func SetLoggerV2(newLogger LoggerV2) {
	if newLogger == nil {
		newLogger = Discard
	}
	Log = newLogger
}

// Discard 丢弃所有日志
var Discard LoggerV2 = discard{}

type discard struct{}

func (discard) Debug(...interface{}) {}
func (discard) Debugf(string, ...interface{}) {}
func (discard) Info(...interface{}) {}
func (discard) Infof(string, ...interface{}) {}
func (discard) Warning(...interface{}) {}
func (discard) Warningf(string, ...interface{}) {}
func (discard) Error(...interface{}) {}
func (discard) Errorf(string, ...interface{}) {}
func (discard) Fatal(...interface{}) {}
func (discard) Fatalf(string, ...interface{}) {}
