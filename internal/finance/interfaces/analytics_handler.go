package interfaces

import (
	"net/http"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type AnalyticsServiceInterface interface {
	MonthlyTrend(userID, period string, now time.Time) ([]application.MonthlyBucket, error)
	CategoryBreakdown(userID, transactionType, period string, now time.Time) ([]application.CategoryBucket, error)
	PeriodSummary(userID, period string, now time.Time) (application.Summary, error)
}

type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewAnalyticsHandler(
	service AnalyticsServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *AnalyticsHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &AnalyticsHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func periodFromQuery(r *http.Request) (string, bool) {
	period := r.URL.Query().Get("period")
	if period == "" {
		return application.PeriodAll, true
	}
	return period, application.IsValidPeriod(period)
}

func (h *AnalyticsHandler) GetMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	period, ok := periodFromQuery(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid period")
		return
	}

	buckets, err := h.service.MonthlyTrend(userID, period, time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute monthly trend")
		return
	}
	if buckets == nil {
		buckets = []application.MonthlyBucket{}
	}

	h.respondJSON(w, http.StatusOK, buckets)
}

func (h *AnalyticsHandler) GetCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionType := r.URL.Query().Get("type")
	if !domain.IsValidTransactionType(transactionType) {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}

	period, ok := periodFromQuery(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid period")
		return
	}

	buckets, err := h.service.CategoryBreakdown(userID, transactionType, period, time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute category breakdown")
		return
	}
	if buckets == nil {
		buckets = []application.CategoryBucket{}
	}

	h.respondJSON(w, http.StatusOK, buckets)
}

func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	period, ok := periodFromQuery(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid period")
		return
	}

	summary, err := h.service.PeriodSummary(userID, period, time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
