package dto

import (
	"time"

	"github.com/guregu/null/v6"

	"github.com/guttosm/bistpulse/internal/domain/models"
)

// Source labels reported on every payload.
const (
	SourceQuotes  = "tradingview:turkey"
	SourceHistory = "yahoo:chart"
)

// asOfLayout is RFC 3339 in UTC with millisecond precision.
const asOfLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t the way every response reports asOf/now.
func Timestamp(t time.Time) string {
	return t.UTC().Format(asOfLayout)
}

// QuotesResponse is returned by GET /api/quotes.
type QuotesResponse struct {
	Source    string                  `json:"source" example:"tradingview:turkey"`
	AsOf      string                  `json:"asOf" example:"2024-05-01T12:00:00.000Z"`
	Quotes    map[string]models.Quote `json:"quotes"`
	Total     int                     `json:"total" example:"1"`
	Requested int                     `json:"requested" example:"2"`
}

// NewQuotesResponse wraps a reshaped quote batch.
func NewQuotesResponse(set models.QuoteSet, now time.Time) QuotesResponse {
	quotes := set.Quotes
	if quotes == nil {
		quotes = map[string]models.Quote{}
	}
	return QuotesResponse{
		Source:    SourceQuotes,
		AsOf:      Timestamp(now),
		Quotes:    quotes,
		Total:     set.Total,
		Requested: set.Requested,
	}
}

// HistoryResponse is returned by GET /api/history. Start and End echo the raw
// query values and are null when the parameter was absent.
type HistoryResponse struct {
	Source    string                          `json:"source" example:"yahoo:chart"`
	AsOf      string                          `json:"asOf" example:"2024-05-01T12:00:00.000Z"`
	Start     null.String                     `json:"start" swaggertype:"string" example:"2024-01-01"`
	End       null.String                     `json:"end" swaggertype:"string" example:"2024-01-31"`
	Series    map[string]models.HistorySeries `json:"series"`
	Errors    map[string]string               `json:"errors"`
	Requested int                             `json:"requested" example:"2"`
	Returned  int                             `json:"returned" example:"1"`
}

// NewHistoryResponse wraps a history batch. start and end are nil when the
// caller did not send them.
func NewHistoryResponse(set models.HistorySet, start, end *string, now time.Time) HistoryResponse {
	series := set.Series
	if series == nil {
		series = map[string]models.HistorySeries{}
	}
	errs := set.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	return HistoryResponse{
		Source:    SourceHistory,
		AsOf:      Timestamp(now),
		Start:     null.StringFromPtr(start),
		End:       null.StringFromPtr(end),
		Series:    series,
		Errors:    errs,
		Requested: set.Requested,
		Returned:  set.Returned,
	}
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	OK  bool   `json:"ok" example:"true"`
	Now string `json:"now" example:"2024-05-01T12:00:00.000Z"`
}
