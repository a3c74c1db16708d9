package contextx

import (
	"context"
	"time"
)

// Detach returns a context that keeps all the values of its parent context
// but detaches from the cancellation and error handling.
// Detach 返回的 context，保证不受父 context cancel 的影响，并且可以保留父 context 中的 Value
func Detach(ctx context.Context) context.Context { return detachedContext{ctx} }

// DetachWithTimeout 脱离父 context 后再加上自己的超时，用于请求结束后仍需完成的后台写入
func DetachWithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(Detach(ctx), timeout)
}

type detachedContext struct{ parent context.Context }

func (v detachedContext) Deadline() (time.Time, bool)       { return time.Time{}, false }
func (v detachedContext) Done() <-chan struct{}             { return nil }
func (v detachedContext) Err() error                        { return nil }
func (v detachedContext) Value(key interface{}) interface{} { return v.parent.Value(key) }
func (v detachedContext) String() string                    { return "contextx.Detach" }
