package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	discard
	lines []string
}

func (r *recorder) Infof(format string, args ...interface{}) {
	r.lines = append(r.lines, format)
}

func TestSetLoggerV2(t *testing.T) {
	defer SetLoggerV2(nil)

	r := &recorder{}
	SetLoggerV2(r)
	Log.Infof("converted %s", "1988-07-03")
	assert.Equal(t, []string{"converted %s"}, r.lines)

	SetLoggerV2(nil)
	assert.Equal(t, Discard, Log)
	// Discard 不应 panic
	Log.Error("dropped")
}

func TestGetCodeLocation(t *testing.T) {
	loc := GetCodeLocation()
	assert.True(t, strings.HasSuffix(loc.FileName, "logger_test.go"), loc.FileName)
	assert.Contains(t, loc.FuncName, "TestGetCodeLocation")
	assert.Contains(t, loc.String(), "logger_test.go:")
}
