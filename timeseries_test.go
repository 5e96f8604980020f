package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGranularityFor(t *testing.T) {
	now := date(2025, time.March, 15)

	assert.Equal(t, GranularityDay, granularityFor(resolvePeriod(PeriodThisMonth, now)))
	assert.Equal(t, GranularityWeek, granularityFor(resolvePeriod(PeriodLast3Months, now)))
	assert.Equal(t, GranularityWeek, granularityFor(resolvePeriod(PeriodLast6Months, now)))
	assert.Equal(t, GranularityMonth, granularityFor(resolvePeriod(PeriodLastYear, now)))
	assert.Equal(t, GranularityMonth, granularityFor(resolvePeriod(PeriodAllTime, now)))
}

func TestBuildSeriesDaily(t *testing.T) {
	p := resolvePeriod(PeriodThisMonth, date(2025, time.March, 15))
	rows := []Transaction{
		{Amount: 1000, Date: date(2025, time.March, 5)},
		{Amount: -400, Date: date(2025, time.March, 10)},
	}

	series := buildSeries(p, GranularityDay, rows)

	require.Len(t, series, 31)

	byLabel := make(map[string]Bucket)
	for _, b := range series {
		byLabel[b.Label] = b
	}

	assert.Equal(t, 1000.0, byLabel["2025-03-05"].Income)
	assert.Equal(t, 0.0, byLabel["2025-03-05"].Expenses)
	assert.Equal(t, 400.0, byLabel["2025-03-10"].Expenses)
	assert.Equal(t, 0.0, byLabel["2025-03-10"].Income)

	for _, b := range series {
		if b.Label == "2025-03-05" || b.Label == "2025-03-10" {
			continue
		}
		assert.Zero(t, b.Income, "bucket %s", b.Label)
		assert.Zero(t, b.Expenses, "bucket %s", b.Label)
	}

	t.Run("labels are ordered ascending", func(t *testing.T) {
		assert.Equal(t, "2025-03-01", series[0].Label)
		assert.Equal(t, "2025-03-31", series[30].Label)
		for i := 1; i < len(series); i++ {
			assert.Less(t, series[i-1].Label, series[i].Label)
		}
	})
}

func TestBuildSeriesWeekly(t *testing.T) {
	p := customPeriod(date(2025, time.January, 1), date(2025, time.March, 31))

	rows := []Transaction{
		{Amount: -75, Date: date(2025, time.February, 15)},
	}

	series := buildSeries(p, GranularityWeek, rows)

	// ISO weeks 2025-W01 (starting Mon Dec 30) through 2025-W14
	// (starting Mon Mar 31).
	require.Len(t, series, 14)
	assert.Equal(t, "2025-W01", series[0].Label)
	assert.Equal(t, "2025-W14", series[13].Label)

	var found bool
	for _, b := range series {
		if b.Label == "2025-W07" {
			found = true
			assert.Equal(t, 75.0, b.Expenses)
		} else {
			assert.Zero(t, b.Expenses)
		}
	}
	assert.True(t, found, "expected bucket 2025-W07 in series")
}

func TestBuildSeriesMonthly(t *testing.T) {
	p := resolvePeriod(PeriodYearToDate, date(2025, time.March, 15))
	rows := []Transaction{
		{Amount: 500, Date: date(2025, time.January, 20)},
		{Amount: 250, Date: date(2025, time.January, 25)},
		{Amount: -100, Date: date(2025, time.March, 2)},
	}

	series := buildSeries(p, GranularityMonth, rows)

	require.Len(t, series, 3)
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"},
		[]string{series[0].Label, series[1].Label, series[2].Label})
	assert.Equal(t, 750.0, series[0].Income)
	assert.Zero(t, series[1].Income)
	assert.Zero(t, series[1].Expenses)
	assert.Equal(t, 100.0, series[2].Expenses)
}

func TestBuildSeriesConservation(t *testing.T) {
	// No transaction sum is dropped: bucket totals match the signed
	// partition of all rows regardless of granularity.
	p := customPeriod(date(2025, time.January, 1), date(2025, time.June, 30))
	rows := []Transaction{
		{Amount: 1200, Date: date(2025, time.January, 3)},
		{Amount: -80.5, Date: date(2025, time.February, 11)},
		{Amount: -19.5, Date: date(2025, time.March, 31)},
		{Amount: 42, Date: date(2025, time.April, 1)},
		{Amount: -300, Date: date(2025, time.June, 30)},
	}

	for _, granularity := range []string{GranularityDay, GranularityWeek, GranularityMonth} {
		t.Run(granularity, func(t *testing.T) {
			series := buildSeries(p, granularity, rows)

			var income, expenses float64
			for _, b := range series {
				income += b.Income
				expenses += b.Expenses
			}
			assert.InDelta(t, 1242.0, income, 1e-9)
			assert.InDelta(t, 400.0, expenses, 1e-9)
		})
	}
}

func TestBuildSeriesInvertedPeriod(t *testing.T) {
	p := customPeriod(date(2025, time.March, 20), date(2025, time.March, 10))

	series := buildSeries(p, GranularityDay, nil)

	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestBucketLabelAgreesWithGeneratedBuckets(t *testing.T) {
	// A date and the start of its bucket always produce the same label,
	// which is what keeps folding consistent with generation.
	dates := []time.Time{
		date(2024, time.December, 31),
		date(2025, time.January, 1),
		date(2025, time.February, 28),
		date(2025, time.June, 15),
	}
	for _, d := range dates {
		for _, granularity := range []string{GranularityDay, GranularityWeek, GranularityMonth} {
			assert.Equal(t, bucketLabel(bucketStart(d, granularity), granularity), bucketLabel(d, granularity),
				"date %s granularity %s", d.Format("2006-01-02"), granularity)
		}
	}
}

func TestDailyExpenseSeries(t *testing.T) {
	p := customPeriod(date(2025, time.March, 1), date(2025, time.March, 3))
	rows := []Transaction{
		{Amount: -10, Date: date(2025, time.March, 1)},
		{Amount: -30, Date: date(2025, time.March, 3)},
		{Amount: 500, Date: date(2025, time.March, 2)}, // income is ignored
	}

	values := dailyExpenseSeries(p, rows)

	assert.Equal(t, []float64{10, 0, 30}, values)
}
