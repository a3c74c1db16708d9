package hotfix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/aiku-open-source/go-calendar/src/core/logger"
)

func TestRecoverError(t *testing.T) {
	assert.NotPanics(t, func() {
		defer RecoverError()
		panic("boom")
	})
}

func TestRecoverToError(t *testing.T) {
	run := func(f func() error) (err error) {
		defer RecoverToError(&err)
		return f()
	}

	err := run(func() error { panic("month table") })
	assert.EqualError(t, err, "panic: month table")

	want := errors.New("plain")
	assert.Equal(t, want, run(func() error { return want }))
	assert.NoError(t, run(func() error { return nil }))
}

func TestRecoverWithNilLogger(t *testing.T) {
	old := logger.Log
	logger.Log = nil
	defer func() { logger.Log = old }()

	assert.NotPanics(t, func() {
		defer RecoverError()
		panic("no logger")
	})

	run := func() (err error) {
		defer RecoverToError(&err)
		panic("no logger")
	}
	assert.NotPanics(t, func() {
		assert.EqualError(t, run(), "panic: no logger")
	})
}
