package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRollupExpenses(t *testing.T) {
	food := Category{ID: "cat-food", Name: "Food", Type: CategoryExpense, IsParent: true}
	groceries := Category{ID: "cat-groceries", Name: "Groceries", Type: CategoryExpense, ParentID: strPtr("cat-food")}
	rent := Category{ID: "cat-rent", Name: "Rent", Type: CategoryExpense}
	categories := []Category{food, groceries, rent}

	t.Run("parent with direct and child entries", func(t *testing.T) {
		rows := []Transaction{
			{Amount: -50, Date: date(2025, time.March, 1), CategoryID: strPtr("cat-food")},
			{Amount: -30, Date: date(2025, time.March, 2), CategoryID: strPtr("cat-groceries")},
		}

		result := rollupExpenses(rows, categories)

		require.Len(t, result, 2)
		assert.Equal(t, StatementRow{
			Category:            "Food",
			Subcategory:         "General",
			Amount:              50,
			Percentage:          62.5,
			IsDirectParentEntry: true,
		}, result[0])
		assert.Equal(t, StatementRow{
			Category:            "Food",
			Subcategory:         "Groceries",
			Amount:              30,
			Percentage:          37.5,
			IsDirectParentEntry: false,
		}, result[1])
	})

	t.Run("standalone categories appear under their own name", func(t *testing.T) {
		rows := []Transaction{
			{Amount: -120, CategoryID: strPtr("cat-rent")},
		}

		result := rollupExpenses(rows, categories)

		require.Len(t, result, 1)
		assert.Equal(t, "Rent", result[0].Category)
		assert.Equal(t, "Rent", result[0].Subcategory)
		assert.False(t, result[0].IsDirectParentEntry)
		assert.Equal(t, 100.0, result[0].Percentage)
	})

	t.Run("uncategorized expenses get their own standalone row", func(t *testing.T) {
		rows := []Transaction{
			{Amount: -25},
			{Amount: -75, CategoryID: strPtr("cat-rent")},
		}

		result := rollupExpenses(rows, categories)

		require.Len(t, result, 2)
		assert.Equal(t, "Rent", result[0].Category)
		assert.Equal(t, "Uncategorized", result[1].Category)
		assert.Equal(t, 25.0, result[1].Percentage)
	})

	t.Run("income rows are excluded", func(t *testing.T) {
		rows := []Transaction{
			{Amount: 900, CategoryID: strPtr("cat-rent")},
			{Amount: -100, CategoryID: strPtr("cat-rent")},
		}

		result := rollupExpenses(rows, categories)

		require.Len(t, result, 1)
		assert.Equal(t, 100.0, result[0].Amount)
	})

	t.Run("no expenses yields no rows", func(t *testing.T) {
		result := rollupExpenses([]Transaction{{Amount: 500}}, categories)

		assert.Empty(t, result)
	})

	t.Run("amounts across branches sum to the expense total", func(t *testing.T) {
		rows := []Transaction{
			{Amount: -50, CategoryID: strPtr("cat-food")},
			{Amount: -30, CategoryID: strPtr("cat-groceries")},
			{Amount: -20, CategoryID: strPtr("cat-rent")},
			{Amount: -10},
		}

		result := rollupExpenses(rows, categories)

		var total, percentages float64
		for _, row := range result {
			total += row.Amount
			percentages += row.Percentage
		}
		assert.InDelta(t, 110.0, total, 1e-9)
		assert.InDelta(t, 100.0, percentages, 0.2)
	})
}

func TestRollupByName(t *testing.T) {
	salary := Category{ID: "cat-salary", Name: "Salary", Type: CategoryIncome}
	freelance := Category{ID: "cat-freelance", Name: "Freelance", Type: CategoryIncome}
	rent := Category{ID: "cat-rent", Name: "Rent", Type: CategoryExpense}
	categories := []Category{salary, freelance, rent}

	t.Run("income rollup sums and sorts descending by amount", func(t *testing.T) {
		rows := []Transaction{
			{Amount: 3000, CategoryID: strPtr("cat-salary")},
			{Amount: 500, CategoryID: strPtr("cat-freelance")},
			{Amount: 250, CategoryID: strPtr("cat-freelance")},
			{Amount: -100, CategoryID: strPtr("cat-rent")}, // expense, ignored
		}

		result := rollupByName(rows, categories, true)

		require.Len(t, result, 2)
		assert.Equal(t, "Salary", result[0].Category)
		assert.Equal(t, 3000.0, result[0].Amount)
		assert.Equal(t, 1, result[0].Count)
		assert.Equal(t, 80.0, result[0].Percentage)
		assert.Equal(t, "Freelance", result[1].Category)
		assert.Equal(t, 750.0, result[1].Amount)
		assert.Equal(t, 2, result[1].Count)
		assert.Equal(t, 20.0, result[1].Percentage)
	})

	t.Run("expense rollup reports magnitudes", func(t *testing.T) {
		rows := []Transaction{
			{Amount: -80, CategoryID: strPtr("cat-rent")},
			{Amount: -20},
		}

		result := rollupByName(rows, categories, false)

		require.Len(t, result, 2)
		assert.Equal(t, "Rent", result[0].Category)
		assert.Equal(t, 80.0, result[0].Amount)
		assert.Equal(t, "Uncategorized", result[1].Category)
		assert.Equal(t, 20.0, result[1].Amount)
	})

	t.Run("empty input yields no rows", func(t *testing.T) {
		assert.Empty(t, rollupByName(nil, categories, true))
	})
}

func TestPercentageOf(t *testing.T) {
	assert.Equal(t, 62.5, percentageOf(50, 80))
	assert.Equal(t, 33.3, percentageOf(1, 3))
	assert.Equal(t, 0.0, percentageOf(10, 0))
}
