package main

import (
	"fmt"
	"time"
)

// Recognized period tokens
const (
	PeriodThisMonth   = "this-month"
	PeriodLastMonth   = "last-month"
	PeriodLast3Months = "last-3-months"
	PeriodLast6Months = "last-6-months"
	PeriodYearToDate  = "year-to-date"
	PeriodLastYear    = "last-year"
	PeriodAllTime     = "all-time"
	PeriodCustom      = "custom"
)

// allTimeEpoch is the fixed lower bound of the all-time period.
var allTimeEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// newPeriod builds a Period from inclusive bounds, normalised to day
// granularity, and fills the string forms used in report payloads.
func newPeriod(start, end time.Time, label string) Period {
	start = truncateToDay(start)
	end = truncateToDay(end)
	return Period{
		StartDate: start,
		EndDate:   end,
		Start:     start.Format("2006-01-02"),
		End:       end.Format("2006-01-02"),
		Label:     label,
	}
}

// truncateToDay drops the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// resolvePeriod maps a named period token to a concrete date range relative
// to now. Unrecognized tokens deliberately resolve like "this-month" rather
// than failing; only custom periods with missing bounds are an error, and
// those are validated before this call.
func resolvePeriod(token string, now time.Time) Period {
	now = truncateToDay(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch token {
	case PeriodLastMonth:
		start := firstOfMonth.AddDate(0, -1, 0)
		end := firstOfMonth.AddDate(0, 0, -1)
		return newPeriod(start, end, start.Format("January 2006"))

	case PeriodLast3Months:
		start := firstOfMonth.AddDate(0, -3, 0)
		return newPeriod(start, now, rangeLabel(start, now))

	case PeriodLast6Months:
		start := firstOfMonth.AddDate(0, -6, 0)
		return newPeriod(start, now, rangeLabel(start, now))

	case PeriodYearToDate:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return newPeriod(start, now, fmt.Sprintf("%d YTD", now.Year()))

	case PeriodLastYear:
		start := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location())
		return newPeriod(start, end, fmt.Sprintf("%d", now.Year()-1))

	case PeriodAllTime:
		return newPeriod(allTimeEpoch, now, "All Time")

	case PeriodThisMonth:
		fallthrough
	default:
		// Unknown tokens (and custom requests without bounds) behave like
		// this-month.
		end := firstOfMonth.AddDate(0, 1, -1)
		return newPeriod(firstOfMonth, end, firstOfMonth.Format("January 2006"))
	}
}

// customPeriod builds a period from caller-supplied inclusive bounds.
func customPeriod(start, end time.Time) Period {
	return newPeriod(start, end, rangeLabel(start, end))
}

// rangeLabel renders a month range label such as "Dec – March 2025".
func rangeLabel(start, end time.Time) string {
	return fmt.Sprintf("%s – %s", start.Format("Jan"), end.Format("January 2006"))
}

// periodDays returns the inclusive length of the period in whole days.
func periodDays(p Period) int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// previousPeriod returns the period of identical duration ending the day
// before p starts. Used for period-over-period change metrics.
func previousPeriod(p Period) Period {
	days := periodDays(p)
	end := p.StartDate.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))
	label := fmt.Sprintf("%s – %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	return newPeriod(start, end, label)
}
