package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bistpulse/internal/datekey"
	"github.com/guttosm/bistpulse/internal/domain/dto"
	"github.com/guttosm/bistpulse/internal/middleware"
	"github.com/guttosm/bistpulse/internal/service"
	"github.com/guttosm/bistpulse/internal/symbol"
)

// Error messages returned to API clients.
const (
	msgQuotesTickersRequired  = "tickers is required, e.g. /api/quotes?tickers=ALARK,FORTE"
	msgHistoryTickersRequired = "tickers is required"
)

// Handler provides the market data endpoints.
//
// Responsibilities:
//   - Read and normalize the ticker list (tickers, or its alias symbols).
//   - Delegate to the quote and history services.
//   - Wrap results into response DTOs stamped with asOf.
type Handler struct {
	quotes  service.QuoteService
	history service.HistoryService
	now     func() time.Time
}

// NewHandler constructs a Handler from its services.
func NewHandler(quotes service.QuoteService, history service.HistoryService) *Handler {
	return &Handler{quotes: quotes, history: history, now: time.Now}
}

// GetQuotes handles GET /api/quotes.
//
// GetQuotes godoc
// @Summary      Quote snapshot
// @Description  Returns the latest price, daily change and volume for up to 50 BIST tickers
// @Tags         quotes
// @Produce      json
// @Param        tickers  query     string  true   "Comma or space separated tickers (alias: symbols)" example(ALARK,FORTE)
// @Success      200      {object}  dto.QuotesResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse   "No tickers given"
// @Failure      502      {object}  dto.ErrorResponse   "Quote provider failed"
// @Router       /api/quotes [get]
func (h *Handler) GetQuotes(c *gin.Context) {
	tickers := symbol.Normalize(tickersParam(c))
	if len(tickers) == 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, msgQuotesTickersRequired, nil)
		return
	}

	set, err := h.quotes.GetQuotes(c.Request.Context(), tickers)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotesResponse(set, h.now()))
}

// GetHistory handles GET /api/history.
//
// GetHistory godoc
// @Summary      Daily price history
// @Description  Returns adjusted (or plain) daily closes for up to 25 BIST tickers. Per-ticker failures are reported in errors.
// @Tags         history
// @Produce      json
// @Param        tickers  query     string  true   "Comma or space separated tickers (alias: symbols)" example(ALARK,FORTE)
// @Param        start    query     string  false  "First day, YYYY-MM-DD" example(2024-01-01)
// @Param        end      query     string  false  "Last day (inclusive), YYYY-MM-DD" example(2024-01-31)
// @Success      200      {object}  dto.HistoryResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse    "No tickers given"
// @Router       /api/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	tickers := symbol.Normalize(tickersParam(c))
	if len(tickers) == 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, msgHistoryTickersRequired, nil)
		return
	}

	start := optionalParam(c, "start")
	end := optionalParam(c, "end")
	r := datekey.NewRange(deref(start), deref(end))

	set := h.history.GetHistory(c.Request.Context(), tickers, r)

	c.JSON(http.StatusOK, dto.NewHistoryResponse(set, start, end, h.now()))
}

// tickersParam returns the raw ticker list, falling back to the symbols alias.
func tickersParam(c *gin.Context) string {
	if v := c.Query("tickers"); v != "" {
		return v
	}
	return c.Query("symbols")
}

// optionalParam returns nil for absent or empty query values.
func optionalParam(c *gin.Context, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
