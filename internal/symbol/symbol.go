// Package symbol turns free-text ticker lists into canonical tickers and maps
// them onto each upstream provider's symbol convention.
package symbol

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// MaxQuoteTickers bounds the tickers accepted by a single request.
	MaxQuoteTickers = 50
	// MaxHistoryTickers bounds the chart fetches performed by a single history request.
	MaxHistoryTickers = 25

	// DefaultMarket is the TradingView exchange prefix used for bare tickers.
	DefaultMarket = "BIST"
	// DefaultChartSuffix is the Yahoo market extension for Borsa Istanbul listings.
	DefaultChartSuffix = ".IS"

	qualifierSep = ":"
)

// ErrInvalidSymbol is returned when a ticker cannot be mapped to an upstream symbol.
var ErrInvalidSymbol = errors.New("invalid symbol")

// Normalize splits raw on commas and whitespace runs, upper-cases every token,
// drops empties and duplicates (first occurrence wins) and keeps at most
// MaxQuoteTickers entries. It never fails; an empty result means no tickers.
func Normalize(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		t := strings.ToUpper(strings.TrimSpace(f))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == MaxQuoteTickers {
			break
		}
	}
	return out
}

// Limit returns at most n leading tickers.
func Limit(tickers []string, n int) []string {
	if n < 0 || len(tickers) <= n {
		return tickers
	}
	return tickers[:n]
}

// QuoteSymbol maps a ticker onto the TradingView "EXCHANGE:TICKER" form.
// Tickers that already carry an exchange qualifier pass through unchanged.
func QuoteSymbol(ticker string) string {
	if strings.Contains(ticker, qualifierSep) {
		return ticker
	}
	return DefaultMarket + qualifierSep + ticker
}

// QuoteSymbols maps every ticker with QuoteSymbol, preserving order.
func QuoteSymbols(tickers []string) []string {
	out := make([]string, len(tickers))
	for i, t := range tickers {
		out[i] = QuoteSymbol(t)
	}
	return out
}

// ChartSymbol maps a ticker onto the Yahoo chart convention.
//
// The exchange qualifier (anything up to the first ':') is dropped. A symbol
// that already carries a dotted market extension is used as-is, otherwise
// DefaultChartSuffix is appended.
func ChartSymbol(ticker string) (string, error) {
	raw := strings.TrimSpace(ticker)
	if _, after, ok := strings.Cut(raw, qualifierSep); ok {
		raw = strings.TrimSpace(after)
	}
	if raw == "" {
		return "", ErrInvalidSymbol
	}

	sym := strings.ToUpper(raw)
	if strings.Contains(sym, ".") {
		return sym, nil
	}
	return sym + DefaultChartSuffix, nil
}

// TickerFromQuoteSymbol recovers the canonical ticker from a TradingView
// symbol such as "BIST:ALARK". It returns "" when nothing usable remains.
func TickerFromQuoteSymbol(tvSymbol string) string {
	s := tvSymbol
	if _, after, ok := strings.Cut(s, qualifierSep); ok {
		s = after
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
