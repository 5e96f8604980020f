package main

import (
	"sort"
	"time"
)

// defaultPaymentTermDays is applied when an unpaid transaction carries no
// explicit due date.
const defaultPaymentTermDays = 30

// effectiveDueDate returns the transaction's due date, defaulting to the
// transaction date plus the standard payment term when unset.
func effectiveDueDate(t Transaction) time.Time {
	if t.DueDate != nil {
		return truncateToDay(*t.DueDate)
	}
	return truncateToDay(t.Date).AddDate(0, 0, defaultPaymentTermDays)
}

// daysBetween returns the whole-day difference from a to b.
func daysBetween(a, b time.Time) int {
	return int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
}

// classifyAging splits unpaid transactions into receivable (income owed to
// the owner) and payable (expenses the owner owes) buckets as of the given
// date. DaysOverdue is positive past due and negative (days remaining)
// before the due date; payable amounts are reported as magnitudes.
func classifyAging(rows []Transaction, asOf time.Time) (receivable, payable AgingBucket) {
	asOf = truncateToDay(asOf)
	receivable.Entries = make([]AgingEntry, 0)
	payable.Entries = make([]AgingEntry, 0)

	for _, row := range rows {
		if row.Status != StatusUnpaid || row.Amount == 0 {
			continue
		}

		due := effectiveDueDate(row)
		entry := AgingEntry{
			ID:          row.ID,
			Description: row.Description,
			Date:        truncateToDay(row.Date).Format("2006-01-02"),
			DueDate:     due.Format("2006-01-02"),
			IsOverdue:   due.Before(asOf),
		}
		if entry.IsOverdue {
			entry.DaysOverdue = daysBetween(due, asOf)
		} else {
			entry.DaysOverdue = -daysBetween(asOf, due)
		}

		if row.Amount > 0 {
			entry.Amount = row.Amount
			addAgingEntry(&receivable, entry)
		} else {
			entry.Amount = -row.Amount
			addAgingEntry(&payable, entry)
		}
	}

	sortAgingEntries(receivable.Entries)
	sortAgingEntries(payable.Entries)
	return receivable, payable
}

func addAgingEntry(bucket *AgingBucket, entry AgingEntry) {
	bucket.Entries = append(bucket.Entries, entry)
	bucket.Total += entry.Amount
	bucket.Count++
	if entry.IsOverdue {
		bucket.OverdueTotal += entry.Amount
		bucket.OverdueCount++
	}
}

// sortAgingEntries orders entries by transaction date descending.
func sortAgingEntries(entries []AgingEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].ID < entries[j].ID
	})
}
