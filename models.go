package main

import "time"

// Transaction statuses
const (
	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"
)

// Category types
const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

// Transaction represents a ledger transaction. Amount is signed:
// positive amounts are income, negative amounts are expenses.
type Transaction struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Date        time.Time  `json:"date"` // day granularity
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CategoryID  *string    `json:"category_id"`
	TaxAmount   *float64   `json:"tax_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Category represents a transaction category. A category with IsParent set
// may own child categories and may also carry transactions directly.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // income or expense
	IsParent  bool      `json:"is_parent"`
	ParentID  *string   `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Period is a resolved, inclusive date range with a display label.
type Period struct {
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
	Start     string    `json:"start_date"` // YYYY-MM-DD
	End       string    `json:"end_date"`   // YYYY-MM-DD
	Label     string    `json:"label"`
}

// Bucket is one time-unit slice of a report time series.
type Bucket struct {
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// StatementRow is one expense line of the income statement, reflecting the
// two-level category hierarchy.
type StatementRow struct {
	Category            string  `json:"category"`
	Subcategory         string  `json:"subcategory"`
	Amount              float64 `json:"amount"`
	Percentage          float64 `json:"percentage"`
	IsDirectParentEntry bool    `json:"is_direct_parent_entry"`
}

// CategoryTotal is one row of a flat (non-hierarchical) category rollup.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// AgingEntry is one unpaid transaction classified by the aging engine.
// DaysOverdue is positive when the entry is past due and negative (days
// remaining) when it is not yet due.
type AgingEntry struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	DueDate     string  `json:"due_date"`
	IsOverdue   bool    `json:"is_overdue"`
	DaysOverdue int     `json:"days_overdue"`
}

// AgingBucket summarises one side (receivable or payable) of the aging report.
type AgingBucket struct {
	Total        float64      `json:"total"`
	OverdueTotal float64      `json:"overdue_total"`
	Count        int          `json:"count"`
	OverdueCount int          `json:"overdue_count"`
	Entries      []AgingEntry `json:"entries"`
}

// StatementTotals carries the aggregate line of the income statement.
type StatementTotals struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetIncome     float64 `json:"net_income"`
	SavingsRate   float64 `json:"savings_rate"`
}

// IncomeStatementReport is the payload of GET /api/reports/income-statement.
type IncomeStatementReport struct {
	Income      []CategoryTotal `json:"income"`
	Expenses    []StatementRow  `json:"expenses"`
	Totals      StatementTotals `json:"totals"`
	PeriodLabel string          `json:"period_label"`
}

// TrendInsights carries the derived indicators of the spending trends report.
type TrendInsights struct {
	AverageDaily     float64 `json:"average_daily"`
	LargestExpense   float64 `json:"largest_expense"`
	Volatility       float64 `json:"volatility"`
	MonthlyChangePct float64 `json:"monthly_change_pct"`
	BudgetStatus     string  `json:"budget_status"`
}

// SpendingTrendsReport is the payload of GET /api/reports/spending-trends.
type SpendingTrendsReport struct {
	TimeSeries    []Bucket        `json:"time_series"`
	TopCategories []CategoryTotal `json:"top_categories"`
	Insights      TrendInsights   `json:"insights"`
	Totals        StatementTotals `json:"totals"`
	PeriodLabel   string          `json:"period_label"`
}

// FinancialHealth is the composite health block of the overview report.
type FinancialHealth struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// IncomeMetrics summarises the income side of the overview report.
type IncomeMetrics struct {
	TotalIncome       float64 `json:"total_income"`
	IncomeChangePct   float64 `json:"income_change_pct"`
	IncomeSourceCount int     `json:"income_source_count"`
}

// SpendingMetrics summarises the expense side of the overview report.
type SpendingMetrics struct {
	TotalExpenses        float64 `json:"total_expenses"`
	MonthlyChangePct     float64 `json:"monthly_change_pct"`
	SavingsRate          float64 `json:"savings_rate"`
	ExpenseToIncomeRatio float64 `json:"expense_to_income_ratio"`
	Volatility           float64 `json:"volatility"`
	DisposableIncome     float64 `json:"disposable_income"`
	BudgetStatus         string  `json:"budget_status"`
}

// Recommendations carries the advisory flags of the overview report.
type Recommendations struct {
	IncreaseSavings   bool `json:"increase_savings"`
	ImproveCashflow   bool `json:"improve_cashflow"`
	ReviewBudget      bool `json:"review_budget"`
	DiversifyIncome   bool `json:"diversify_income"`
	ConsiderInvesting bool `json:"consider_investing"`
}

// OverviewReport is the payload of GET /api/reports/overview.
type OverviewReport struct {
	FinancialHealth FinancialHealth `json:"financial_health"`
	IncomeMetrics   IncomeMetrics   `json:"income_metrics"`
	SpendingMetrics SpendingMetrics `json:"spending_metrics"`
	TimeSeries      []Bucket        `json:"time_series"`
	Recommendations Recommendations `json:"recommendations"`
	Period          Period          `json:"period"`
}

// CategorySummary is the aggregate block of the categories report.
type CategorySummary struct {
	TotalIncome        float64 `json:"total_income"`
	TotalExpenses      float64 `json:"total_expenses"`
	TopIncomeCategory  string  `json:"top_income_category"`
	TopExpenseCategory string  `json:"top_expense_category"`
	IncomeCategories   int     `json:"income_categories"`
	ExpenseCategories  int     `json:"expense_categories"`
}

// CategoriesReport is the payload of GET /api/reports/categories.
type CategoriesReport struct {
	IncomeCategories  []CategoryTotal `json:"income_categories"`
	ExpenseCategories []CategoryTotal `json:"expense_categories"`
	Summary           CategorySummary `json:"summary"`
	Period            Period          `json:"period"`
}

// AccountsReport is the payload of GET /api/reports/accounts.
type AccountsReport struct {
	Receivable  AgingBucket `json:"receivable"`
	Payable     AgingBucket `json:"payable"`
	PeriodLabel string      `json:"period_label"`
}
