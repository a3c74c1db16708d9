package lunar

// YearInfo 某个农历年的汇总信息
type YearInfo struct {
	Year          int       `json:"year"`
	YearName      string    `json:"year_name"`
	Sexagenary    string    `json:"sexagenary"`
	Zodiac        string    `json:"zodiac"`
	LeapMonth     int       `json:"leap_month"`
	LeapMonthName string    `json:"leap_month_name,omitempty"`
	Months        []int     `json:"months"`
	MonthEnds     []int     `json:"month_ends"`
	Days          int       `json:"days"`
	NewYear       SolarDate `json:"new_year"`
}

func yearOrError(year int) (*yearData, error) {
	y, ok := getYear(year)
	if !ok {
		return nil, newError(ErrCodeYearOutOfRange, "农历年份超出范围(%d-%d)：%d", MinYear, MaxYear, year)
	}
	return y, nil
}

// LunarMonths 各月天数（29或30），有闰月时13个，闰月排在 闰月+1 位
func LunarMonths(year int) ([]int, error) {
	y, err := yearOrError(year)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), y.months...), nil
}

// LunarYearMonths 各月月末距正月初一的累计天数，最后一个即全年天数
func LunarYearMonths(year int) ([]int, error) {
	y, err := yearOrError(year)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), y.ends...), nil
}

// LunarYearDays 农历年总天数
func LunarYearDays(year int) (int, error) {
	y, err := yearOrError(year)
	if err != nil {
		return 0, err
	}
	return y.days, nil
}

// LunarMonthDays 某个月份位置的天数
func LunarMonthDays(year, month int) (int, error) {
	y, err := yearOrError(year)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > len(y.months) {
		return 0, newError(ErrCodeMonthOutOfRange, "农历%d年月份超出范围(1-%d)：%d", year, len(y.months), month)
	}
	return y.months[month-1], nil
}

// LeapMonth 闰几月，0为无闰月
func LeapMonth(year int) (int, error) {
	y, err := yearOrError(year)
	if err != nil {
		return 0, err
	}
	return y.leapMonth, nil
}

// NewYearDate 农历正月初一对应的公历日期
func NewYearDate(year int) (SolarDate, error) {
	y, err := yearOrError(year)
	if err != nil {
		return SolarDate{}, err
	}
	return toSolar(y.newYear), nil
}

// Year 农历年汇总
func Year(year int) (YearInfo, error) {
	y, err := yearOrError(year)
	if err != nil {
		return YearInfo{}, err
	}
	return YearInfo{
		Year:          year,
		YearName:      YearName(year),
		Sexagenary:    SexagenaryYear(year),
		Zodiac:        Zodiac(year),
		LeapMonth:     y.leapMonth,
		LeapMonthName: LeapMonthName(y.leapMonth),
		Months:        append([]int(nil), y.months...),
		MonthEnds:     append([]int(nil), y.ends...),
		Days:          y.days,
		NewYear:       toSolar(y.newYear),
	}, nil
}
