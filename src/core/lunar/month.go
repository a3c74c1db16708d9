package lunar

import (
	"fmt"

	"gitlab.com/aiku-open-source/go-calendar/src/core/date"
)

// DayEntry 公历某天及其农历
type DayEntry struct {
	Solar string    `json:"solar"` // Y-n-j，不补零
	Lunar LunarDate `json:"lunar"`
}

// SolarMonth 公历整月的农历对照，月内任意一天超出支持范围都返回错误
func SolarMonth(year, month int) ([]DayEntry, error) {
	days := date.MonthDays(year, month)
	if days == 0 || year <= 0 {
		return nil, newError(ErrCodeSolarDate, "阳历月份无效：%d-%d", year, month)
	}
	entries := make([]DayEntry, 0, days)
	for day := 1; day <= days; day++ {
		d, err := SolarToLunar(year, month, day)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DayEntry{
			Solar: fmt.Sprintf("%d-%d-%d", year, month, day),
			Lunar: d,
		})
	}
	return entries, nil
}
