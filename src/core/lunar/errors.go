package lunar

import (
	"errors"
	"fmt"
)

// ErrorCode 日历错误码，和组件包错误码配置中的日历段(12010-12070)保持一致
type ErrorCode int

const (
	ErrCodeUnknown         ErrorCode = 12000
	ErrCodeDateRange       ErrorCode = 12010
	ErrCodeDateFormat      ErrorCode = 12020
	ErrCodeSolarDate       ErrorCode = 12030
	ErrCodeLunarDateFormat ErrorCode = 12040
	ErrCodeYearOutOfRange  ErrorCode = 12050
	ErrCodeMonthOutOfRange ErrorCode = 12060
	ErrCodeDayOutOfRange   ErrorCode = 12070
)

// Name 错误名称
func (e ErrorCode) Name() string {
	switch e {
	case ErrCodeDateRange:
		return "DateRangeError"
	case ErrCodeDateFormat:
		return "DateFormatError"
	case ErrCodeSolarDate:
		return "SolarDateError"
	case ErrCodeLunarDateFormat:
		return "LunarDateFormatError"
	case ErrCodeYearOutOfRange:
		return "YearOutOfRange"
	case ErrCodeMonthOutOfRange:
		return "MonthOutOfRange"
	case ErrCodeDayOutOfRange:
		return "DayOutOfRange"
	default:
		return "CalendarError"
	}
}

func (e ErrorCode) String() string {
	switch e {
	case ErrCodeDateRange:
		return "超出日期范围"
	case ErrCodeDateFormat:
		return "日期格式错误"
	case ErrCodeSolarDate:
		return "公历日期错误"
	case ErrCodeLunarDateFormat:
		return "农历日期格式错误"
	case ErrCodeYearOutOfRange:
		return "年份超出范围"
	case ErrCodeMonthOutOfRange:
		return "月份超出范围"
	case ErrCodeDayOutOfRange:
		return "日期超出范围"
	default:
		return "日历错误"
	}
}

// Error 日历转换错误，Code 区分错误种类，Message 带上出错的输入
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Code.String())
}

// Is 按错误码比较，errors.Is(err, lunar.ErrDateRange) 即可判断种类
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetErrorCode 取出错误码，不是日历错误时返回 ErrCodeUnknown
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeUnknown
}

var (
	ErrDateRange       = &Error{Code: ErrCodeDateRange}
	ErrDateFormat      = &Error{Code: ErrCodeDateFormat}
	ErrSolarDate       = &Error{Code: ErrCodeSolarDate}
	ErrLunarDateFormat = &Error{Code: ErrCodeLunarDateFormat}
	ErrYearOutOfRange  = &Error{Code: ErrCodeYearOutOfRange}
	ErrMonthOutOfRange = &Error{Code: ErrCodeMonthOutOfRange}
	ErrDayOutOfRange   = &Error{Code: ErrCodeDayOutOfRange}
)
