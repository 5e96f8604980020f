package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestEffectiveDueDate(t *testing.T) {
	t.Run("explicit due date wins", func(t *testing.T) {
		tx := Transaction{Date: date(2025, time.January, 1), DueDate: timePtr(date(2025, time.January, 10))}

		assert.Equal(t, date(2025, time.January, 10), effectiveDueDate(tx))
	})

	t.Run("missing due date defaults to date plus thirty days", func(t *testing.T) {
		tx := Transaction{Date: date(2025, time.January, 1)}

		assert.Equal(t, date(2025, time.January, 31), effectiveDueDate(tx))
	})
}

func TestClassifyAging(t *testing.T) {
	asOf := date(2025, time.February, 15)

	t.Run("defaulted due date with overdue receivable", func(t *testing.T) {
		rows := []Transaction{
			{ID: "t1", Amount: 200, Date: date(2025, time.January, 1), Status: StatusUnpaid},
		}

		receivable, payable := classifyAging(rows, asOf)

		require.Len(t, receivable.Entries, 1)
		assert.Empty(t, payable.Entries)

		entry := receivable.Entries[0]
		assert.Equal(t, "2025-01-31", entry.DueDate)
		assert.True(t, entry.IsOverdue)
		assert.Equal(t, 15, entry.DaysOverdue)
		assert.Equal(t, 200.0, receivable.Total)
		assert.Equal(t, 200.0, receivable.OverdueTotal)
		assert.Equal(t, 1, receivable.OverdueCount)
	})

	t.Run("due yesterday is one day overdue", func(t *testing.T) {
		rows := []Transaction{
			{ID: "t1", Amount: 100, Date: date(2025, time.February, 1), Status: StatusUnpaid,
				DueDate: timePtr(date(2025, time.February, 14))},
		}

		receivable, _ := classifyAging(rows, asOf)

		require.Len(t, receivable.Entries, 1)
		assert.True(t, receivable.Entries[0].IsOverdue)
		assert.Equal(t, 1, receivable.Entries[0].DaysOverdue)
	})

	t.Run("due tomorrow has minus one days overdue", func(t *testing.T) {
		rows := []Transaction{
			{ID: "t1", Amount: 100, Date: date(2025, time.February, 1), Status: StatusUnpaid,
				DueDate: timePtr(date(2025, time.February, 16))},
		}

		receivable, _ := classifyAging(rows, asOf)

		require.Len(t, receivable.Entries, 1)
		assert.False(t, receivable.Entries[0].IsOverdue)
		assert.Equal(t, -1, receivable.Entries[0].DaysOverdue)
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		rows := []Transaction{
			{ID: "t1", Amount: 100, Date: date(2025, time.February, 1), Status: StatusUnpaid,
				DueDate: timePtr(asOf)},
		}

		receivable, _ := classifyAging(rows, asOf)

		require.Len(t, receivable.Entries, 1)
		assert.False(t, receivable.Entries[0].IsOverdue)
		assert.Equal(t, 0, receivable.Entries[0].DaysOverdue)
	})

	t.Run("payables report magnitudes", func(t *testing.T) {
		rows := []Transaction{
			{ID: "t1", Amount: -350, Date: date(2025, time.January, 10), Status: StatusUnpaid},
			{ID: "t2", Amount: -150, Date: date(2025, time.February, 10), Status: StatusUnpaid},
		}

		receivable, payable := classifyAging(rows, asOf)

		assert.Empty(t, receivable.Entries)
		require.Len(t, payable.Entries, 2)
		assert.Equal(t, 500.0, payable.Total)
		assert.Equal(t, 2, payable.Count)
		// t1 defaulted due Feb 9, overdue; t2 due Mar 12, not yet due.
		assert.Equal(t, 350.0, payable.OverdueTotal)
		assert.Equal(t, 1, payable.OverdueCount)
		for _, entry := range payable.Entries {
			assert.Greater(t, entry.Amount, 0.0)
		}
	})

	t.Run("entries are sorted by date descending", func(t *testing.T) {
		rows := []Transaction{
			{ID: "old", Amount: 10, Date: date(2025, time.January, 1), Status: StatusUnpaid},
			{ID: "new", Amount: 20, Date: date(2025, time.February, 10), Status: StatusUnpaid},
			{ID: "mid", Amount: 30, Date: date(2025, time.January, 20), Status: StatusUnpaid},
		}

		receivable, _ := classifyAging(rows, asOf)

		require.Len(t, receivable.Entries, 3)
		assert.Equal(t, "new", receivable.Entries[0].ID)
		assert.Equal(t, "mid", receivable.Entries[1].ID)
		assert.Equal(t, "old", receivable.Entries[2].ID)
	})

	t.Run("paid transactions do not participate", func(t *testing.T) {
		rows := []Transaction{
			{ID: "t1", Amount: 100, Date: date(2025, time.January, 1), Status: StatusPaid},
			{ID: "t2", Amount: -100, Date: date(2025, time.January, 1), Status: StatusPaid},
		}

		receivable, payable := classifyAging(rows, asOf)

		assert.Empty(t, receivable.Entries)
		assert.Empty(t, payable.Entries)
		assert.Zero(t, receivable.Total)
		assert.Zero(t, payable.Total)
	})
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, daysBetween(date(2025, time.February, 14), date(2025, time.February, 15)))
	assert.Equal(t, 0, daysBetween(date(2025, time.February, 15), date(2025, time.February, 15)))
	assert.Equal(t, 31, daysBetween(date(2025, time.January, 15), date(2025, time.February, 15)))
}
