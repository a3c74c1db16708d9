package date

import (
	"fmt"
	"time"
)

const (
	// LayoutYMD 年-月-日
	LayoutYMD = "2006-01-02"
)

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func Now2YMD() string {
	return time.Now().Format(LayoutYMD)
}
func Day2YMD(day time.Time) string {
	return day.Format(LayoutYMD)
}

// ToDay 今天0点
func ToDay() time.Time {
	resultTime := time.Now()
	resultTime = time.Date(resultTime.Year(), resultTime.Month(), resultTime.Day(), 0, 0, 0, 0, resultTime.Location())
	return resultTime
}

// YMD 返回UTC时区下某天的0点，不做合法性检查（超出的日期会按 time.Date 规则进位）
func YMD(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// IsLeapYear 公历闰年
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MonthDays 公历某月天数，month 不在 1-12 时返回0
func MonthDays(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// IsValid 检查公历日期是否存在，例如 2024-02-30 返回false
func IsValid(year, month, day int) bool {
	if year <= 0 || day < 1 {
		return false
	}
	return day <= MonthDays(year, month)
}

// DaysBetween 两个日期0点之间相差的天数 (to - from)
func DaysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// FormatYMD 补零格式 YYYY-MM-DD
func FormatYMD(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
