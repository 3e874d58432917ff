// Package service orchestrates provider calls and reshaping for the HTTP and
// CLI surfaces.
package service

import (
	"context"

	"github.com/guttosm/bistpulse/internal/datekey"
)

// QuoteProvider returns the raw quote snapshot document for provider symbols.
//
//go:generate mockgen -package=service_test -destination=mock_providers_test.go -source=providers.go
type QuoteProvider interface {
	Scan(ctx context.Context, symbols []string) (any, error)
}

// ChartProvider returns the raw daily chart document of one symbol.
type ChartProvider interface {
	Chart(ctx context.Context, symbol string, r datekey.Range) (any, error)
}
