package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Report assembler and handler functions. Each assembler resolves the
// period, pulls rows through the gateway, runs the components it needs and
// composes the payload. No partial reports: a failure anywhere surfaces as a
// single error to the caller.

var (
	// errInvalidPeriod is only raised for custom period requests with
	// missing or malformed bounds; named tokens never error.
	errInvalidPeriod = errors.New("custom period requires valid start_date and end_date")

	// errGatewayUnavailable marks ledger fetch failures.
	errGatewayUnavailable = errors.New("ledger gateway unavailable")
)

// reportError wraps an internal computation error with enough context to
// diagnose which report and period failed.
type reportError struct {
	Report string
	Period string
	Err    error
}

func (e *reportError) Error() string {
	return fmt.Sprintf("generating %s report for %s: %v", e.Report, e.Period, e.Err)
}

func (e *reportError) Unwrap() error { return e.Err }

// timeNow is swapped out in tests to keep period resolution deterministic.
var timeNow = time.Now

// periodFromRequest resolves the period query parameters of a report
// request. Custom periods require explicit bounds; every named token has
// defined fallback behavior.
func periodFromRequest(c *gin.Context, now time.Time) (Period, error) {
	token := c.DefaultQuery("period", PeriodThisMonth)
	if token != PeriodCustom {
		return resolvePeriod(token, now), nil
	}

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		return Period{}, errInvalidPeriod
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %v", errInvalidPeriod, err)
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %v", errInvalidPeriod, err)
	}
	return customPeriod(start, end), nil
}

// ownerFromRequest reads the caller-supplied owner identifier. Identity
// verification happens upstream; the engine trusts this value.
func ownerFromRequest(c *gin.Context) (string, bool) {
	ownerID := c.GetHeader("X-Owner-ID")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Owner-ID header is required"})
		return "", false
	}
	return ownerID, true
}

// respondReportError maps the report error taxonomy to HTTP statuses.
func respondReportError(c *gin.Context, err error) {
	log.Printf("Error generating report: %v", err)
	switch {
	case errors.Is(err, errInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPeriod.Error()})
	case errors.Is(err, errGatewayUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Ledger store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating report"})
	}
}

// sumTotals splits signed amounts into income and expense magnitudes.
func sumTotals(rows []Transaction) (totalIncome, totalExpenses float64) {
	for _, row := range rows {
		if row.Amount > 0 {
			totalIncome += row.Amount
		} else {
			totalExpenses += -row.Amount
		}
	}
	return totalIncome, totalExpenses
}

// incomeSourceCount counts distinct categories among income rows;
// uncategorized income counts as a single source.
func incomeSourceCount(rows []Transaction) int {
	sources := make(map[string]struct{})
	for _, row := range rows {
		if row.Amount <= 0 {
			continue
		}
		source := uncategorizedLabel
		if row.CategoryID != nil {
			source = *row.CategoryID
		}
		sources[source] = struct{}{}
	}
	return len(sources)
}

func fetchRows(ctx context.Context, gw LedgerGateway, ownerID string, p Period, filter *TransactionFilter) ([]Transaction, error) {
	rows, err := gw.FetchTransactions(ctx, ownerID, p.StartDate, p.EndDate, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errGatewayUnavailable, err)
	}
	return rows, nil
}

func fetchCategories(ctx context.Context, gw LedgerGateway, ownerID string) ([]Category, error) {
	categories, err := gw.FetchCategories(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errGatewayUnavailable, err)
	}
	return categories, nil
}

// buildIncomeStatement assembles income lines, hierarchical expense rows and
// the totals block for the period.
func buildIncomeStatement(ctx context.Context, gw LedgerGateway, ownerID string, p Period) (*IncomeStatementReport, error) {
	rows, err := fetchRows(ctx, gw, ownerID, p, nil)
	if err != nil {
		return nil, err
	}
	categories, err := fetchCategories(ctx, gw, ownerID)
	if err != nil {
		return nil, err
	}

	totalIncome, totalExpenses := sumTotals(rows)
	return &IncomeStatementReport{
		Income:   rollupByName(rows, categories, true),
		Expenses: rollupExpenses(rows, categories),
		Totals: StatementTotals{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			NetIncome:     totalIncome - totalExpenses,
			SavingsRate:   savingsRate(totalIncome, totalIncome-totalExpenses),
		},
		PeriodLabel: p.Label,
	}, nil
}

// buildSpendingTrends assembles the time series, top expense categories and
// derived spending indicators, including the previous-period comparison.
func buildSpendingTrends(ctx context.Context, gw LedgerGateway, ownerID string, p Period) (*SpendingTrendsReport, error) {
	rows, err := fetchRows(ctx, gw, ownerID, p, nil)
	if err != nil {
		return nil, err
	}
	prevRows, err := fetchRows(ctx, gw, ownerID, previousPeriod(p), nil)
	if err != nil {
		return nil, err
	}
	categories, err := fetchCategories(ctx, gw, ownerID)
	if err != nil {
		return nil, err
	}

	totalIncome, totalExpenses := sumTotals(rows)
	_, prevExpenses := sumTotals(prevRows)

	topCategories := rollupByName(rows, categories, false)
	if len(topCategories) > 5 {
		topCategories = topCategories[:5]
	}

	var largestExpense float64
	for _, row := range rows {
		if row.Amount < 0 && -row.Amount > largestExpense {
			largestExpense = -row.Amount
		}
	}

	var averageDaily float64
	if days := periodDays(p); days > 0 {
		averageDaily = totalExpenses / float64(days)
	}

	changePct := percentChange(totalExpenses, prevExpenses)
	return &SpendingTrendsReport{
		TimeSeries:    buildSeries(p, granularityFor(p), rows),
		TopCategories: topCategories,
		Insights: TrendInsights{
			AverageDaily:     averageDaily,
			LargestExpense:   largestExpense,
			Volatility:       volatility(dailyExpenseSeries(p, rows)),
			MonthlyChangePct: changePct,
			BudgetStatus:     budgetStatus(changePct),
		},
		Totals: StatementTotals{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			NetIncome:     totalIncome - totalExpenses,
			SavingsRate:   savingsRate(totalIncome, totalIncome-totalExpenses),
		},
		PeriodLabel: p.Label,
	}, nil
}

// buildOverview assembles the composite health view: scalar metrics for the
// period, the change versus the previous period, the time series and the
// recommendation flags.
func buildOverview(ctx context.Context, gw LedgerGateway, ownerID string, p Period) (*OverviewReport, error) {
	rows, err := fetchRows(ctx, gw, ownerID, p, nil)
	if err != nil {
		return nil, err
	}
	prevRows, err := fetchRows(ctx, gw, ownerID, previousPeriod(p), nil)
	if err != nil {
		return nil, err
	}

	totalIncome, totalExpenses := sumTotals(rows)
	prevIncome, prevExpenses := sumTotals(prevRows)

	netIncome := totalIncome - totalExpenses
	rate := savingsRate(totalIncome, netIncome)
	ratio := expenseToIncomeRatio(totalIncome, totalExpenses)
	vol := volatility(dailyExpenseSeries(p, rows))
	monthlyChange := percentChange(totalExpenses, prevExpenses)
	sources := incomeSourceCount(rows)

	score := financialHealthScore(rate, ratio, vol, netIncome)
	return &OverviewReport{
		FinancialHealth: FinancialHealth{
			Score:       score,
			Description: healthDescription(score),
		},
		IncomeMetrics: IncomeMetrics{
			TotalIncome:       totalIncome,
			IncomeChangePct:   percentChange(totalIncome, prevIncome),
			IncomeSourceCount: sources,
		},
		SpendingMetrics: SpendingMetrics{
			TotalExpenses:        totalExpenses,
			MonthlyChangePct:     monthlyChange,
			SavingsRate:          rate,
			ExpenseToIncomeRatio: ratio,
			Volatility:           vol,
			DisposableIncome:     netIncome,
			BudgetStatus:         budgetStatus(monthlyChange),
		},
		TimeSeries:      buildSeries(p, granularityFor(p), rows),
		Recommendations: buildRecommendations(rate, netIncome, monthlyChange, sources),
		Period:          p,
	}, nil
}

// buildCategoriesReport assembles the flat income and expense category
// breakdowns with their summary block.
func buildCategoriesReport(ctx context.Context, gw LedgerGateway, ownerID string, p Period) (*CategoriesReport, error) {
	rows, err := fetchRows(ctx, gw, ownerID, p, nil)
	if err != nil {
		return nil, err
	}
	categories, err := fetchCategories(ctx, gw, ownerID)
	if err != nil {
		return nil, err
	}

	incomeCategories := rollupByName(rows, categories, true)
	expenseCategories := rollupByName(rows, categories, false)
	totalIncome, totalExpenses := sumTotals(rows)

	summary := CategorySummary{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		IncomeCategories:  len(incomeCategories),
		ExpenseCategories: len(expenseCategories),
	}
	if len(incomeCategories) > 0 {
		summary.TopIncomeCategory = incomeCategories[0].Category
	}
	if len(expenseCategories) > 0 {
		summary.TopExpenseCategory = expenseCategories[0].Category
	}

	return &CategoriesReport{
		IncomeCategories:  incomeCategories,
		ExpenseCategories: expenseCategories,
		Summary:           summary,
		Period:            p,
	}, nil
}

// buildAccountsReport classifies the period's unpaid transactions into
// receivable and payable aging buckets as of the given date.
func buildAccountsReport(ctx context.Context, gw LedgerGateway, ownerID string, p Period, asOf time.Time) (*AccountsReport, error) {
	rows, err := fetchRows(ctx, gw, ownerID, p, &TransactionFilter{Status: StatusUnpaid})
	if err != nil {
		return nil, err
	}

	receivable, payable := classifyAging(rows, asOf)
	return &AccountsReport{
		Receivable:  receivable,
		Payable:     payable,
		PeriodLabel: p.Label,
	}, nil
}

// @Summary Financial overview report
// @Description Composite financial health view for the requested period: health score, income and spending metrics, time series and recommendations
// @Tags reports
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param period query string false "Period token (this-month, last-month, last-3-months, last-6-months, year-to-date, last-year, all-time, custom)"
// @Param start_date query string false "Custom period start (YYYY-MM-DD)"
// @Param end_date query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} OverviewReport "Overview report"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Ledger store unavailable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/overview [get]
func getOverviewReport(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}
	p, err := periodFromRequest(c, timeNow())
	if err != nil {
		respondReportError(c, err)
		return
	}

	report, err := buildOverview(c.Request.Context(), store, ownerID, p)
	if err != nil {
		respondReportError(c, &reportError{Report: "overview", Period: p.Label, Err: err})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Income statement report
// @Description Income and expense statement for the requested period, with hierarchical expense rows
// @Tags reports
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param period query string false "Period token"
// @Param start_date query string false "Custom period start (YYYY-MM-DD)"
// @Param end_date query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} IncomeStatementReport "Income statement"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Ledger store unavailable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/income-statement [get]
func getIncomeStatementReport(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}
	p, err := periodFromRequest(c, timeNow())
	if err != nil {
		respondReportError(c, err)
		return
	}

	report, err := buildIncomeStatement(c.Request.Context(), store, ownerID, p)
	if err != nil {
		respondReportError(c, &reportError{Report: "income-statement", Period: p.Label, Err: err})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Spending trends report
// @Description Spending time series, top categories and derived indicators for the requested period
// @Tags reports
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param period query string false "Period token"
// @Param start_date query string false "Custom period start (YYYY-MM-DD)"
// @Param end_date query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} SpendingTrendsReport "Spending trends"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Ledger store unavailable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/spending-trends [get]
func getSpendingTrendsReport(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}
	p, err := periodFromRequest(c, timeNow())
	if err != nil {
		respondReportError(c, err)
		return
	}

	report, err := buildSpendingTrends(c.Request.Context(), store, ownerID, p)
	if err != nil {
		respondReportError(c, &reportError{Report: "spending-trends", Period: p.Label, Err: err})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Category breakdown report
// @Description Income and expense totals per category for the requested period
// @Tags reports
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param period query string false "Period token"
// @Param start_date query string false "Custom period start (YYYY-MM-DD)"
// @Param end_date query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} CategoriesReport "Category breakdown"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Ledger store unavailable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/categories [get]
func getCategoriesReport(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}
	p, err := periodFromRequest(c, timeNow())
	if err != nil {
		respondReportError(c, err)
		return
	}

	report, err := buildCategoriesReport(c.Request.Context(), store, ownerID, p)
	if err != nil {
		respondReportError(c, &reportError{Report: "categories", Period: p.Label, Err: err})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Receivable and payable aging report
// @Description Unpaid transactions in the period classified into receivable and payable aging buckets
// @Tags reports
// @Produce json
// @Param X-Owner-ID header string true "Owner identifier"
// @Param period query string false "Period token"
// @Param start_date query string false "Custom period start (YYYY-MM-DD)"
// @Param end_date query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} AccountsReport "Aging report"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Ledger store unavailable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/accounts [get]
func getAccountsReport(c *gin.Context) {
	ownerID, ok := ownerFromRequest(c)
	if !ok {
		return
	}
	now := timeNow()
	p, err := periodFromRequest(c, now)
	if err != nil {
		respondReportError(c, err)
		return
	}

	report, err := buildAccountsReport(c.Request.Context(), store, ownerID, p, now)
	if err != nil {
		respondReportError(c, &reportError{Report: "accounts", Period: p.Label, Err: err})
		return
	}
	c.JSON(http.StatusOK, report)
}
