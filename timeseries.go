package main

import (
	"fmt"
	"time"
)

// Time-series granularities
const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
)

// granularityFor picks the bucket size for a period: daily buckets for
// single-month periods, weekly buckets up to roughly six months, monthly
// buckets beyond that.
func granularityFor(p Period) string {
	days := periodDays(p)
	switch {
	case days <= 31:
		return GranularityDay
	case days <= 186:
		return GranularityWeek
	default:
		return GranularityMonth
	}
}

// bucketLabel returns the label of the bucket containing t. Weeks use ISO
// week-of-year labels and are aligned to Monday, so a date and the start of
// its generated bucket always agree on the label.
func bucketLabel(t time.Time, granularity string) string {
	switch granularity {
	case GranularityWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// bucketStart aligns t to the start of its bucket.
func bucketStart(t time.Time, granularity string) time.Time {
	t = truncateToDay(t)
	switch granularity {
	case GranularityWeek:
		// Back up to Monday.
		offset := (int(t.Weekday()) + 6) % 7
		return t.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// nextBucket steps to the start of the following bucket.
func nextBucket(t time.Time, granularity string) time.Time {
	switch granularity {
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// buildSeries generates the full ordered bucket sequence spanning the period
// and folds transaction amounts into it. Every generated label appears in the
// output even with zero activity; buckets never drop a row that falls inside
// the period. An inverted period yields an empty series.
func buildSeries(p Period, granularity string, rows []Transaction) []Bucket {
	series := make([]Bucket, 0)
	if p.StartDate.After(p.EndDate) {
		return series
	}

	index := make(map[string]int)
	for t := bucketStart(p.StartDate, granularity); !t.After(p.EndDate); t = nextBucket(t, granularity) {
		label := bucketLabel(t, granularity)
		index[label] = len(series)
		series = append(series, Bucket{Label: label})
	}

	for _, row := range rows {
		i, ok := index[bucketLabel(row.Date, granularity)]
		if !ok {
			continue
		}
		if row.Amount > 0 {
			series[i].Income += row.Amount
		} else {
			series[i].Expenses += -row.Amount
		}
	}

	return series
}

// dailyExpenseSeries returns the per-day expense magnitudes for the period,
// used by the volatility metric.
func dailyExpenseSeries(p Period, rows []Transaction) []float64 {
	buckets := buildSeries(p, GranularityDay, rows)
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = b.Expenses
	}
	return values
}
