package lunar

import (
	"strconv"
	"strings"
)

var (
	cnNumbers = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十", "十一", "十二"}

	// 天干、地支按 year%10、year%12 排列，公元0年为庚申
	heavenlyStems   = []string{"庚", "辛", "壬", "癸", "甲", "乙", "丙", "丁", "戊", "己"}
	earthlyBranches = []string{"申", "酉", "戌", "亥", "子", "丑", "寅", "卯", "辰", "巳", "午", "未"}
	zodiacs         = []string{"猴", "鸡", "狗", "猪", "鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊"}

	monthNames = []string{"", "正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}
	dayDigits  = []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
)

// YearName 年份逐位转汉字，1988 -> 一九八八
func YearName(year int) string {
	if year < 0 {
		year = -year
	}
	var sb strings.Builder
	for _, c := range strconv.Itoa(year) {
		sb.WriteString(cnNumbers[c-'0'])
	}
	return sb.String()
}

// SexagenaryYear 干支纪年，如 1988 -> 戊辰
func SexagenaryYear(year int) string {
	return heavenlyStems[mod(year, 10)] + earthlyBranches[mod(year, 12)]
}

// Zodiac 生肖
func Zodiac(year int) string {
	return zodiacs[mod(year, 12)]
}

// Ordinal 月份位置转实际月份，闰月返回它所重复的月份
//
//	leapMonth=2: 1->1, 2->2, 3->2(闰), 4->3 ...
func Ordinal(position, leapMonth int) (month int, isLeap bool) {
	if leapMonth == 0 || position <= leapMonth {
		return position, false
	}
	return position - 1, position == leapMonth+1
}

// MonthName 月份位置转月名，如 正月、闰二月、冬月、腊月
func MonthName(position, leapMonth int) string {
	month, isLeap := Ordinal(position, leapMonth)
	if month < 1 || month > 12 {
		return ""
	}
	if isLeap {
		return "闰" + monthNames[month] + "月"
	}
	return monthNames[month] + "月"
}

// LeapMonthName 闰月标签，如 闰二月、闰十一月，没有闰月时为空
func LeapMonthName(leapMonth int) string {
	if leapMonth < 1 || leapMonth > 12 {
		return ""
	}
	return "闰" + cnNumbers[leapMonth] + "月"
}

// DayName 农历日名：初一..初十、十一..十九、二十、廿一..廿九、三十
func DayName(day int) string {
	switch {
	case day >= 1 && day <= 10:
		return "初" + dayDigits[day]
	case day > 10 && day < 20:
		return "十" + dayDigits[day-10]
	case day == 20:
		return "二十"
	case day > 20 && day < 30:
		return "廿" + dayDigits[day-20]
	case day == 30:
		return "三十"
	}
	return ""
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
