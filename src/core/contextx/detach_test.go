package contextx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type ctxKey struct{}

func TestDetach(t *testing.T) {
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "1988-07-03"))
	ctx := Detach(parent)
	cancel()

	assert.Error(t, parent.Err())
	assert.NoError(t, ctx.Err())
	assert.Nil(t, ctx.Done())
	assert.Equal(t, "1988-07-03", ctx.Value(ctxKey{}))
}

func TestDetachWithTimeout(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cancel()

	ctx, stop := DetachWithTimeout(parent, 50*time.Millisecond)
	defer stop()
	assert.NoError(t, ctx.Err())

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
