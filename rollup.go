package main

import (
	"math"
	"sort"
)

// uncategorizedLabel groups transactions that carry no category reference.
const uncategorizedLabel = "Uncategorized"

// directParentLabel marks transactions assigned directly to a parent
// category rather than to one of its children.
const directParentLabel = "General"

// categoryIndex builds an id lookup for rollup resolution.
func categoryIndex(categories []Category) map[string]Category {
	byID := make(map[string]Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}
	return byID
}

// rollupExpenses groups expense transactions into statement rows reflecting
// the two-level category hierarchy. Three disjoint branches cover every row:
// children roll up under their parent's name, direct-parent assignments get a
// "General" subcategory, and standalone categories appear under their own
// name. Percentages are shares of total expense magnitude, one decimal.
func rollupExpenses(rows []Transaction, categories []Category) []StatementRow {
	byID := categoryIndex(categories)

	type rowKey struct {
		category     string
		subcategory  string
		directParent bool
	}
	sums := make(map[rowKey]float64)
	var total float64

	for _, row := range rows {
		if row.Amount >= 0 {
			continue
		}
		amount := -row.Amount
		total += amount

		key := rowKey{category: uncategorizedLabel, subcategory: uncategorizedLabel}
		if row.CategoryID != nil {
			if cat, ok := byID[*row.CategoryID]; ok {
				switch {
				case cat.ParentID != nil:
					if parent, ok := byID[*cat.ParentID]; ok && parent.IsParent {
						key = rowKey{category: parent.Name, subcategory: cat.Name}
					} else {
						// Dangling parent reference: treat as standalone.
						key = rowKey{category: cat.Name, subcategory: cat.Name}
					}
				case cat.IsParent:
					key = rowKey{category: cat.Name, subcategory: directParentLabel, directParent: true}
				default:
					key = rowKey{category: cat.Name, subcategory: cat.Name}
				}
			}
		}
		sums[key] += amount
	}

	result := make([]StatementRow, 0, len(sums))
	for key, amount := range sums {
		result = append(result, StatementRow{
			Category:            key.category,
			Subcategory:         key.subcategory,
			Amount:              amount,
			Percentage:          percentageOf(amount, total),
			IsDirectParentEntry: key.directParent,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		if result[i].IsDirectParentEntry != result[j].IsDirectParentEntry {
			return result[i].IsDirectParentEntry
		}
		return result[i].Subcategory < result[j].Subcategory
	})

	return result
}

// rollupByName is the flat rollup used for income lines and the categories
// report: group by category name only, ignoring hierarchy. The sign selects
// which transactions participate: positive amounts for income categories,
// negative for expense categories. Rows are sorted by amount descending.
func rollupByName(rows []Transaction, categories []Category, income bool) []CategoryTotal {
	byID := categoryIndex(categories)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	var total float64

	for _, row := range rows {
		if income && row.Amount <= 0 {
			continue
		}
		if !income && row.Amount >= 0 {
			continue
		}
		amount := math.Abs(row.Amount)
		total += amount

		name := uncategorizedLabel
		if row.CategoryID != nil {
			if cat, ok := byID[*row.CategoryID]; ok {
				name = cat.Name
			}
		}
		sums[name] += amount
		counts[name]++
	}

	result := make([]CategoryTotal, 0, len(sums))
	for name, amount := range sums {
		result = append(result, CategoryTotal{
			Category:   name,
			Amount:     amount,
			Percentage: percentageOf(amount, total),
			Count:      counts[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// percentageOf returns amount as a share of total, rounded to one decimal.
// A zero total yields zero for every row rather than dividing by zero.
func percentageOf(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(amount/total*1000) / 10
}
