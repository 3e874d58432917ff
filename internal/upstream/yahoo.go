package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/guttosm/bistpulse/internal/datekey"
)

const (
	// DefaultChartURL is the Yahoo Finance v8 chart endpoint; the symbol is appended as a path segment.
	DefaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

	// DefaultRange is requested when the caller does not supply both boundaries.
	DefaultRange = "1y"
)

// YahooClient fetches daily price charts from Yahoo Finance.
type YahooClient struct {
	client
}

// NewYahooClient creates a chart client.
func NewYahooClient(options ...Option) *YahooClient {
	return &YahooClient{client: newClient("Yahoo", DefaultChartURL, options)}
}

// Chart requests the daily chart of symbol (already in Yahoo form, e.g. "ALARK.IS").
// When r has both boundaries they are sent as period1/period2, otherwise the
// last DefaultRange is requested.
func (c *YahooClient) Chart(ctx context.Context, symbol string, r datekey.Range) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.chartURL(symbol, r), nil)
	if err != nil {
		return nil, &Error{Provider: c.provider, Err: err}
	}
	return c.do(req)
}

func (c *YahooClient) chartURL(symbol string, r datekey.Range) string {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("includeAdjustedClose", "true")
	if r.Bounded() {
		q.Set("period1", strconv.FormatInt(max(0, *r.Start), 10))
		q.Set("period2", strconv.FormatInt(max(0, *r.End), 10))
	} else {
		q.Set("range", DefaultRange)
	}
	return c.endpoint + "/" + url.PathEscape(symbol) + "?" + q.Encode()
}
