package interfaces

import (
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
)

type MockAnalyticsService struct {
	Trend     []application.MonthlyBucket
	Breakdown []application.CategoryBucket
	Summary   application.Summary
	Err       error

	RequestedPeriod string
	RequestedType   string
}

func (m *MockAnalyticsService) MonthlyTrend(userID, period string, now time.Time) ([]application.MonthlyBucket, error) {
	m.RequestedPeriod = period
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Trend, nil
}

func (m *MockAnalyticsService) CategoryBreakdown(userID, transactionType, period string, now time.Time) ([]application.CategoryBucket, error) {
	m.RequestedPeriod = period
	m.RequestedType = transactionType
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Breakdown, nil
}

func (m *MockAnalyticsService) PeriodSummary(userID, period string, now time.Time) (application.Summary, error) {
	m.RequestedPeriod = period
	if m.Err != nil {
		return application.Summary{}, m.Err
	}
	return m.Summary, nil
}
