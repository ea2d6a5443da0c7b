package mealplan

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"Household-Planner-Backend/domain"
)

// Week identifiers follow ISO 8601: "2026-W02". Weeks start on Monday and
// week 1 is the week containing the year's first Thursday.
var weekPattern = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)

// ParseWeek splits a "YYYY-Wnn" identifier into its year and week number.
func ParseWeek(week string) (int, int, error) {
	m := weekPattern.FindStringSubmatch(week)
	if m == nil {
		return 0, 0, domain.ErrInvalidWeekSpecifier
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, domain.ErrInvalidWeekSpecifier
	}
	weekNum, err := strconv.Atoi(m[2])
	if err != nil || weekNum < 1 || weekNum > 53 {
		return 0, 0, domain.ErrInvalidWeekSpecifier
	}

	return year, weekNum, nil
}

// FormatWeek renders a (year, week) pair as "YYYY-Wnn".
func FormatWeek(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeekMonday returns the Monday beginning the given ISO week.
// January 4th always falls in ISO week 1, so the Monday of week 1 is
// found by stepping back from it, and every later week is a whole
// number of weeks ahead.
func WeekMonday(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	firstMonday := jan4.AddDate(0, 0, -(weekday - 1))
	return firstMonday.AddDate(0, 0, (week-1)*7)
}

// WeekDates returns the seven dates of the given ISO week, Monday through
// Sunday, formatted as "YYYY-MM-DD".
func WeekDates(year, week int) []string {
	monday := WeekMonday(year, week)
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = monday.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}

// CurrentWeek returns the "YYYY-Wnn" identifier of the ISO week containing
// the reference time.
func CurrentWeek(ref time.Time) string {
	year, week := ref.ISOWeek()
	return FormatWeek(year, week)
}
