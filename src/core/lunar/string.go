package lunar

import (
	"regexp"
	"strconv"
	"strings"

	"gitlab.com/aiku-open-source/go-calendar/src/core/date"
)

var ymdPattern = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

func splitYMD(s string) (year, month, day int) {
	parts := strings.Split(s, "-")
	// 已经过正则校验，Atoi 不会失败
	year, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	day, _ = strconv.Atoi(parts[2])
	return
}

// ParseSolar 解析并校验阳历日期字符串 YYYY-MM-DD，月日可以不补零
func ParseSolar(solar string) (SolarDate, error) {
	if !ymdPattern.MatchString(solar) {
		return SolarDate{}, newError(ErrCodeDateFormat, "阳历日期格式错误，正确格式为：YYYY-MM-DD，输入：%s", solar)
	}
	year, month, day := splitYMD(solar)
	if !date.IsValid(year, month, day) {
		return SolarDate{}, newError(ErrCodeSolarDate, "阳历日期无效：%s", solar)
	}
	return SolarDate{Year: year, Month: month, Day: day}, nil
}

// ParseLunar 只检查格式，取值范围由 LunarToSolar 检查
func ParseLunar(lunar string) (year, month, day int, err error) {
	if !ymdPattern.MatchString(lunar) {
		return 0, 0, 0, newError(ErrCodeLunarDateFormat, "农历日期格式错误，正确格式为：YYYY-MM-DD，输入：%s", lunar)
	}
	year, month, day = splitYMD(lunar)
	return year, month, day, nil
}

// SolarToLunarString 阳历日期字符串转农历，"1988-07-03" -> "1988-05-20"
func SolarToLunarString(solar string) (string, error) {
	s, err := ParseSolar(solar)
	if err != nil {
		return "", err
	}
	d, err := SolarToLunar(s.Year, s.Month, s.Day)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// LunarToSolarString 农历日期字符串转阳历，"1988-05-20" -> "1988-07-03"
//
// 月份按位置计，有闰月的年份闰月占一位，如2023年闰二月写作 "2023-03-xx"
func LunarToSolarString(lunar string) (string, error) {
	year, month, day, err := ParseLunar(lunar)
	if err != nil {
		return "", err
	}
	d, err := LunarToSolar(year, month, day)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
