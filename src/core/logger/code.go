package logger

import (
	"fmt"
	"runtime"
)

type (
	CodeLocation struct {
		FuncName   string
		FileName   string
		LineNumber int
	}
)

func (c CodeLocation) String() string {
	return fmt.Sprintf("%s:%d %s", c.FileName, c.LineNumber, c.FuncName)
}

// GetCodeLocation 调用方所在位置
func GetCodeLocation() CodeLocation {
	return GetCodeLocationBySkip(2)
}

func GetCodeLocationBySkip(skip int) CodeLocation {
	pc, file, line, ok := runtime.Caller(skip)
	var funcName string
	if ok {
		funcName = runtime.FuncForPC(pc).Name()
	}
	return CodeLocation{
		FileName:   file,
		LineNumber: line,
		FuncName:   funcName,
	}
}
