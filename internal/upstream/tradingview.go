package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/guttosm/bistpulse/internal/reshape"
)

// DefaultScannerURL is the TradingView scanner endpoint for Turkish listings.
const DefaultScannerURL = "https://scanner.tradingview.com/turkey/scan"

// TradingViewClient fetches quote snapshots from the TradingView scanner.
type TradingViewClient struct {
	client
}

// NewTradingViewClient creates a scanner client.
func NewTradingViewClient(options ...Option) *TradingViewClient {
	return &TradingViewClient{client: newClient("TradingView", DefaultScannerURL, options)}
}

type scanRequest struct {
	Symbols scanSymbols `json:"symbols"`
	Columns []string    `json:"columns"`
}

type scanSymbols struct {
	Tickers []string  `json:"tickers"`
	Query   scanQuery `json:"query"`
}

type scanQuery struct {
	Types []string `json:"types"`
}

// Scan requests the reshape.QuoteColumns for every provider symbol
// ("BIST:ALARK") and returns the raw response document.
func (c *TradingViewClient) Scan(ctx context.Context, symbols []string) (any, error) {
	body, err := json.Marshal(scanRequest{
		Symbols: scanSymbols{Tickers: symbols, Query: scanQuery{Types: []string{}}},
		Columns: reshape.QuoteColumns,
	})
	if err != nil {
		return nil, fmt.Errorf("encode scan request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Provider: c.provider, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}
