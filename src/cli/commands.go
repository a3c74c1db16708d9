package cli

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlab.com/aiku-open-source/go-calendar/src/core/date"
	"gitlab.com/aiku-open-source/go-calendar/src/core/lunar"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
)

func parseYear(s string) (int, error) {
	if !yearPattern.MatchString(s) {
		return 0, fmt.Errorf("年份格式错误，正确格式为：YYYY，输入：%s", s)
	}
	return strconv.Atoi(s)
}

func parseMonth(s string) (year, month int, err error) {
	m := monthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("月份格式错误，正确格式为：YYYY-MM，输入：%s", s)
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	return year, month, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

type solarResult struct {
	Solar string          `json:"solar"`
	Lunar lunar.LunarDate `json:"lunar"`
}

func (a *app) solarCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "solar [YYYY-MM-DD]",
		Short:   "公历转农历，默认今天",
		Example: "  lunar solar 1988-07-03",
		Args:    cobra.MaximumNArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			input := date.Now2YMD()
			if len(args) == 1 {
				input = args[0]
			}
			s, err := lunar.ParseSolar(input)
			if err != nil {
				return err
			}
			d, err := a.service.SolarToLunar(s.Year, s.Month, s.Day)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.asJSON {
				return a.printJSON(out, solarResult{Solar: s.String(), Lunar: d})
			}
			_, err = fmt.Fprintf(out, "%s -> %s %s %s年 %s\n", s, d, d.Chinese(), d.Sexagenary, d.Zodiac)
			return err
		}),
	}
}

type lunarResult struct {
	Lunar   string `json:"lunar"`
	Chinese string `json:"chinese"`
	Solar   string `json:"solar"`
}

func (a *app) lunarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lunar YYYY-MM-DD",
		Short: "农历转公历，月份按位置计(闰月占一位)",
		Example: `  lunar lunar 1988-05-20
  lunar lunar 2023-03-02   # 2023年闰二月初二`,
		Args: cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			solar, err := a.service.LunarToSolarString(args[0])
			if err != nil {
				return err
			}
			s, err := lunar.ParseSolar(solar)
			if err != nil {
				return err
			}
			d, err := a.service.SolarToLunar(s.Year, s.Month, s.Day)
			if err != nil {
				return err
			}
			res := lunarResult{Lunar: d.String(), Chinese: d.Chinese(), Solar: solar}
			out := cmd.OutOrStdout()
			if a.asJSON {
				return a.printJSON(out, res)
			}
			_, err = fmt.Fprintf(out, "%s %s -> %s\n", res.Lunar, res.Chinese, res.Solar)
			return err
		}),
	}
}

func (a *app) monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "month YYYY-MM",
		Short:   "公历某月每天的农历",
		Example: "  lunar month 2024-02",
		Args:    cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			year, month, err := parseMonth(args[0])
			if err != nil {
				return err
			}
			entries, err := a.service.SolarMonth(cmdContext(cmd), year, month)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.asJSON {
				return a.printJSON(out, entries)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Solar, e.Lunar, e.Lunar.MonthName, e.Lunar.DayName)
			}
			return w.Flush()
		}),
	}
}

func (a *app) yearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "year YYYY",
		Short:   "农历年信息：闰月、各月天数、春节日期",
		Example: "  lunar year 2023",
		Args:    cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			info, err := a.service.YearInfo(year)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.asJSON {
				return a.printJSON(out, info)
			}
			leap := "无"
			if info.LeapMonthName != "" {
				leap = info.LeapMonthName
			}
			months := make([]string, len(info.Months))
			for i, days := range info.Months {
				months[i] = strconv.Itoa(days)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "年份\t%d %s年 %s年 %s\n", info.Year, info.YearName, info.Sexagenary, info.Zodiac)
			fmt.Fprintf(w, "春节\t%s\n", info.NewYear)
			fmt.Fprintf(w, "闰月\t%s\n", leap)
			fmt.Fprintf(w, "各月天数\t%s\n", strings.Join(months, " "))
			fmt.Fprintf(w, "全年天数\t%d\n", info.Days)
			return w.Flush()
		}),
	}
}

func (a *app) warmupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "warmup YYYY",
		Short:   "把公历某年12个月的农历对照写入 redis",
		Example: "  CALENDAR_REDIS_ADDR=127.0.0.1:6379 lunar warmup 2024",
		Args:    cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			n, err := a.service.WarmUp(cmdContext(cmd), year)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d: %d months cached\n", year, n)
			return err
		}),
	}
}
