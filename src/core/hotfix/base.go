package hotfix

import (
	"fmt"
	"runtime/debug"

	"gitlab.com/aiku-open-source/go-calendar/src/core/logger"
)

// RecoverError 必须直接 defer 调用，捕获 panic 并记录堆栈
func RecoverError() {
	if err := recover(); err != nil {
		if logger.Log != nil {
			logger.Log.Errorf("err:%+v\nStack:%s", err, string(debug.Stack()))
		}
	}
}

// RecoverToError 必须直接 defer 调用，把 panic 记录下来并写入 *errp，
// 用于需要把 panic 当成普通错误返回的协程任务
func RecoverToError(errp *error) {
	if r := recover(); r != nil {
		if logger.Log != nil {
			logger.Log.Errorf("err:%+v\nStack:%s", r, string(debug.Stack()))
		}
		if errp != nil {
			*errp = fmt.Errorf("panic: %v", r)
		}
	}
}
