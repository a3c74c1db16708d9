package gofunc

import (
	"context"
	"time"

	"gitlab.com/aiku-open-source/go-calendar/src/core/hotfix"
)

// Coroutine 启动协程执行 f，panic 会被记录而不会让进程退出
func Coroutine(f func()) {
	go func() {
		defer hotfix.RecoverError()

		f()
	}()
}

// CoroutineWithTimeOut 启动协程执行 f，f 拿到的 context 带超时，f 返回后取消
func CoroutineWithTimeOut(ctx context.Context, timeout time.Duration, f func(timeoutCtx context.Context)) {
	// 使用context.WithTimeout设置上下文的超时
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)

	go func() {
		defer cancel() // 确保协程完成后取消上下文
		defer hotfix.RecoverError()

		f(timeoutCtx)
	}()
}
