package main

import "math"

// Metrics calculator: pure functions over already-aggregated scalars.

// savingsRate returns net income as a percentage of total income.
func savingsRate(totalIncome, netIncome float64) float64 {
	if totalIncome <= 0 {
		return 0
	}
	return netIncome / totalIncome * 100
}

// expenseToIncomeRatio returns expenses as a percentage of income.
func expenseToIncomeRatio(totalIncome, totalExpenses float64) float64 {
	if totalIncome <= 0 {
		return 0
	}
	return totalExpenses / totalIncome * 100
}

// volatility returns the coefficient of variation of the series as a
// percentage: (stddev / mean) * 100. Series with fewer than two points or a
// zero mean report zero volatility.
func volatility(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}

	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(series))

	return math.Sqrt(variance) / mean * 100
}

// financialHealthScore blends savings rate, expense ratio, volatility and
// disposable income into a 0-100 composite:
//   - savings rate contributes up to 40 points
//   - a low expense ratio up to 30 points
//   - low volatility up to 15 points
//   - positive disposable income up to 15 points
func financialHealthScore(savingsRate, expenseRatio, volatility, disposableIncome float64) int {
	score := math.Min(40, savingsRate*2)
	score += math.Max(0, 30-expenseRatio*0.3)
	score += math.Max(0, 15-volatility*0.5)
	if disposableIncome > 0 {
		score += 15
	} else {
		score += math.Max(0, 15+disposableIncome/1000)
	}

	score = math.Max(0, math.Min(100, score))
	return int(math.Round(score))
}

// healthDescription maps a health score to its display band.
func healthDescription(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs attention"
	}
}

// buildRecommendations derives the advisory flags of the overview report.
// Investing is only suggested when none of the other flags fire and income
// comes from more than one source.
func buildRecommendations(savingsRate, disposableIncome, monthlyChangePct float64, incomeSourceCount int) Recommendations {
	r := Recommendations{
		IncreaseSavings: savingsRate < 20,
		ImproveCashflow: disposableIncome <= 0,
		ReviewBudget:    monthlyChangePct > 10,
		DiversifyIncome: incomeSourceCount == 1,
	}
	r.ConsiderInvesting = savingsRate >= 20 && disposableIncome > 0 &&
		monthlyChangePct <= 10 && incomeSourceCount > 1
	return r
}

// budgetStatus bands month-over-month spending growth.
func budgetStatus(monthlyChangePct float64) string {
	if monthlyChangePct < 10 {
		return "On track"
	}
	return "Needs attention"
}

// percentChange returns the relative change from previous to current as a
// percentage, or zero when there is no previous baseline.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
