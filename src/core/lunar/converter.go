// Package lunar 农历(阴历)与公历(阳历)互转，覆盖农历1891-2100年
//
// 数据来自每年一行的农历表，加载时解码成各月天数，转换过程只做查表和加减，
// 所有函数都是纯函数，可以并发调用。
package lunar

import (
	"time"

	"gitlab.com/aiku-open-source/go-calendar/src/core/date"
)

// SolarDate 公历日期
type SolarDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String YYYY-MM-DD
func (d SolarDate) String() string {
	return date.FormatYMD(d.Year, d.Month, d.Day)
}

// Time UTC 0点
func (d SolarDate) Time() time.Time {
	return date.YMD(d.Year, d.Month, d.Day)
}

// LunarDate 农历日期
type LunarDate struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"` // 月份位置 1-13，有闰月的年份闰月占一位
	Day           int    `json:"day"`
	LeapMonth     int    `json:"leap_month"` // 当年闰几月，0为无闰月
	IsLeap        bool   `json:"is_leap"`
	YearName      string `json:"year_name"`
	MonthName     string `json:"month_name"`
	DayName       string `json:"day_name"`
	Sexagenary    string `json:"sexagenary"`
	Zodiac        string `json:"zodiac"`
	LeapMonthName string `json:"leap_month_name,omitempty"`
}

// String YYYY-MM-DD，月份为位置序号，闰月不单独标记
func (d LunarDate) String() string {
	return date.FormatYMD(d.Year, d.Month, d.Day)
}

// Chinese 如 一九八八年五月二十
func (d LunarDate) Chinese() string {
	return d.YearName + "年" + d.MonthName + d.DayName
}

// OrdinalMonth 实际月份，闰二月返回2
func (d LunarDate) OrdinalMonth() int {
	month, _ := Ordinal(d.Month, d.LeapMonth)
	return month
}

// Record 旧接口的数组形式：
// [年, 月名, 日名, 干支, 生肖, 闰月标签(无闰月为0), [年, 月份位置, 日]]
func (d LunarDate) Record() []interface{} {
	var leap interface{} = 0
	if d.LeapMonthName != "" {
		leap = d.LeapMonthName
	}
	return []interface{}{
		d.YearName,
		d.MonthName,
		d.DayName,
		d.Sexagenary,
		d.Zodiac,
		leap,
		[]int{d.Year, d.Month, d.Day},
	}
}

func newLunarDate(year, position, day, leapMonth int) LunarDate {
	_, isLeap := Ordinal(position, leapMonth)
	return LunarDate{
		Year:          year,
		Month:         position,
		Day:           day,
		LeapMonth:     leapMonth,
		IsLeap:        isLeap,
		YearName:      YearName(year),
		MonthName:     MonthName(position, leapMonth),
		DayName:       DayName(day),
		Sexagenary:    SexagenaryYear(year),
		Zodiac:        Zodiac(year),
		LeapMonthName: LeapMonthName(leapMonth),
	}
}

// MinDate 支持的最早公历日期 1891-02-09 (农历1891年正月初一)
func MinDate() SolarDate {
	return toSolar(minDate)
}

// MaxDate 支持的最晚公历日期 2100-02-09 (农历2100年正月初一)
func MaxDate() SolarDate {
	return toSolar(maxDate)
}

func toSolar(t time.Time) SolarDate {
	return SolarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func checkRange(t time.Time) error {
	if t.Before(minDate) || t.After(maxDate) {
		return newError(ErrCodeDateRange, "日期超出有效范围(%d.%d.%d - %d.%d.%d): %d.%d.%d",
			minDate.Year(), minDate.Month(), minDate.Day(),
			maxDate.Year(), maxDate.Month(), maxDate.Day(),
			t.Year(), t.Month(), t.Day())
	}
	return nil
}

// SolarToLunar 公历转农历
func SolarToLunar(year, month, day int) (LunarDate, error) {
	if !date.IsValid(year, month, day) {
		return LunarDate{}, newError(ErrCodeSolarDate, "阳历日期无效：%d-%d-%d", year, month, day)
	}
	t := date.YMD(year, month, day)
	if err := checkRange(t); err != nil {
		return LunarDate{}, err
	}
	y := &years[year-MinYear]
	return lunarByBetween(year, date.DaysBetween(y.newYear, t)), nil
}

// lunarByBetween between 为距 year 年正月初一的天数，负数表示落在上一个农历年
func lunarByBetween(year, between int) LunarDate {
	y := &years[year-MinYear]
	if between < 0 {
		year--
		y = &years[year-MinYear]
		between += y.days
	}
	position, day, prev := 1, 1, 0
	for i, end := range y.ends {
		if between < end {
			position = i + 1
			day = between - prev + 1
			break
		}
		prev = end
	}
	return newLunarDate(year, position, day, y.leapMonth)
}

// LunarToSolar 农历转公历，month 为月份位置(1-13)，闰月是 闰月+1 位
func LunarToSolar(year, month, day int) (SolarDate, error) {
	y, ok := getYear(year)
	if !ok {
		return SolarDate{}, newError(ErrCodeYearOutOfRange, "农历年份超出范围(%d-%d)：%d", MinYear, MaxYear, year)
	}
	if month < 1 || month > 13 {
		return SolarDate{}, newError(ErrCodeMonthOutOfRange, "农历月份超出范围(1-13)：%d", month)
	}
	if day < 1 || day > 30 {
		return SolarDate{}, newError(ErrCodeDayOutOfRange, "农历日期超出范围(1-30)：%d", day)
	}
	if month > len(y.months) {
		return SolarDate{}, newError(ErrCodeMonthOutOfRange, "农历%d年没有闰月，月份超出范围(1-12)：%d", year, month)
	}
	if day > y.months[month-1] {
		return SolarDate{}, newError(ErrCodeDayOutOfRange, "农历%d年%s只有%d天：%d",
			year, MonthName(month, y.leapMonth), y.months[month-1], day)
	}

	offset := day - 1
	if month > 1 {
		offset += y.ends[month-2]
	}
	t := y.newYear.AddDate(0, 0, offset)
	if err := checkRange(t); err != nil {
		return SolarDate{}, err
	}
	return toSolar(t), nil
}

// Converter 农历/公历转换器，不持有状态，一个实例可以在多个协程间共享
type Converter struct{}

// NewConverter 创建转换器
func NewConverter() *Converter {
	return &Converter{}
}

func (c *Converter) SolarToLunar(year, month, day int) (LunarDate, error) {
	return SolarToLunar(year, month, day)
}

func (c *Converter) LunarToSolar(year, month, day int) (SolarDate, error) {
	return LunarToSolar(year, month, day)
}

func (c *Converter) SolarToLunarString(solar string) (string, error) {
	return SolarToLunarString(solar)
}

func (c *Converter) LunarToSolarString(lunar string) (string, error) {
	return LunarToSolarString(lunar)
}

func (c *Converter) SolarMonth(year, month int) ([]DayEntry, error) {
	return SolarMonth(year, month)
}

func (c *Converter) Year(year int) (YearInfo, error) {
	return Year(year)
}
