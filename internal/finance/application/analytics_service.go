package application

import (
	"sort"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

func IsValidPeriod(period string) bool {
	switch period {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// MonthlyBucket is one point of the income/expense trend chart. Month is a
// display label; ordering is decided by the raw year-month key, never by
// the label.
type MonthlyBucket struct {
	Month        string  `json:"month"`
	IncomeTotal  float64 `json:"income"`
	ExpenseTotal float64 `json:"expense"`
}

// CategoryBucket is one slice of the per-category breakdown chart.
type CategoryBucket struct {
	Name  string  `json:"name"`
	Total float64 `json:"value"`
	Icon  string  `json:"icon"`
}

// Summary mirrors the headline numbers of the analytics dashboard.
type Summary struct {
	IncomeTotal    float64 `json:"income"`
	ExpenseTotal   float64 `json:"expense"`
	Balance        float64 `json:"balance"`
	AverageExpense float64 `json:"averageExpense"`
	SavingsRate    float64 `json:"savingsRate"`
}

// AggregateByMonth buckets transactions by calendar month, sums income and
// expense per bucket, and returns the most recent six buckets in
// chronological order.
func AggregateByMonth(transactions []domain.Transaction) []MonthlyBucket {
	type monthKey struct {
		year  int
		month time.Month
	}

	totals := make(map[monthKey]*MonthlyBucket)
	var keys []monthKey
	for _, transaction := range transactions {
		key := monthKey{transaction.Date.Year(), transaction.Date.Month()}
		bucket, exists := totals[key]
		if !exists {
			bucket = &MonthlyBucket{
				Month: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			}
			totals[key] = bucket
			keys = append(keys, key)
		}
		if transaction.Type == domain.TransactionTypeIncome {
			bucket.IncomeTotal += transaction.Amount
		} else {
			bucket.ExpenseTotal += transaction.Amount
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	if len(keys) > 6 {
		keys = keys[len(keys)-6:]
	}

	buckets := make([]MonthlyBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, *totals[key])
	}
	return buckets
}

// AggregateByCategory totals transactions of the given type against the
// default catalog, drops empty categories and sorts descending by total.
func AggregateByCategory(transactions []domain.Transaction, transactionType string) []CategoryBucket {
	var buckets []CategoryBucket
	for _, category := range domain.DefaultCategories {
		if category.Type != transactionType {
			continue
		}
		var total float64
		for _, transaction := range transactions {
			if transaction.Type == transactionType && transaction.Category == category.Name {
				total += transaction.Amount
			}
		}
		if total > 0 {
			buckets = append(buckets, CategoryBucket{Name: category.Name, Total: total, Icon: category.Icon})
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})
	return buckets
}

// FilterByPeriod keeps transactions whose date lies within the period ending
// at now. The boundary is inclusive: a transaction exactly 7/30/365 days old
// still counts.
func FilterByPeriod(transactions []domain.Transaction, period string, now time.Time) []domain.Transaction {
	if period == PeriodAll || period == "" {
		return transactions
	}

	var maxDays float64
	switch period {
	case PeriodWeek:
		maxDays = 7
	case PeriodMonth:
		maxDays = 30
	case PeriodYear:
		maxDays = 365
	default:
		return transactions
	}

	var filtered []domain.Transaction
	for _, transaction := range transactions {
		diffDays := now.Sub(transaction.Date.Time).Hours() / 24
		if diffDays <= maxDays {
			filtered = append(filtered, transaction)
		}
	}
	return filtered
}

// Summarize computes the dashboard headline numbers over a transaction set.
func Summarize(transactions []domain.Transaction) Summary {
	var summary Summary
	var expenseCount int
	for _, transaction := range transactions {
		if transaction.Type == domain.TransactionTypeIncome {
			summary.IncomeTotal += transaction.Amount
		} else {
			summary.ExpenseTotal += transaction.Amount
			expenseCount++
		}
	}
	summary.Balance = summary.IncomeTotal - summary.ExpenseTotal
	if expenseCount > 0 {
		summary.AverageExpense = summary.ExpenseTotal / float64(expenseCount)
	}
	if summary.IncomeTotal > 0 {
		summary.SavingsRate = (summary.IncomeTotal - summary.ExpenseTotal) / summary.IncomeTotal * 100
	}
	return summary
}

// AnalyticsService serves the chart endpoints by pulling a user's
// transactions and reducing them with the pure aggregation functions above.
type AnalyticsService struct {
	transactions *TransactionService
}

func NewAnalyticsService(transactions *TransactionService) *AnalyticsService {
	return &AnalyticsService{transactions: transactions}
}

func (s *AnalyticsService) MonthlyTrend(userID, period string, now time.Time) ([]MonthlyBucket, error) {
	transactions, err := s.transactions.GetUserTransactions(userID)
	if err != nil {
		return nil, err
	}
	return AggregateByMonth(FilterByPeriod(transactions, period, now)), nil
}

func (s *AnalyticsService) CategoryBreakdown(userID, transactionType, period string, now time.Time) ([]CategoryBucket, error) {
	transactions, err := s.transactions.GetUserTransactions(userID)
	if err != nil {
		return nil, err
	}
	return AggregateByCategory(FilterByPeriod(transactions, period, now), transactionType), nil
}

func (s *AnalyticsService) PeriodSummary(userID, period string, now time.Time) (Summary, error) {
	transactions, err := s.transactions.GetUserTransactions(userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(FilterByPeriod(transactions, period, now)), nil
}
