package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/guttosm/bistpulse/internal/app"
	"github.com/guttosm/bistpulse/internal/datekey"
	"github.com/guttosm/bistpulse/internal/domain/dto"
	"github.com/guttosm/bistpulse/internal/symbol"
)

// errNoTickers is returned by runFetch when the ticker list normalizes to nothing.
var errNoTickers = errors.New("tickers is required")

// fetchRequest carries the one-shot fetch flags.
type fetchRequest struct {
	Kind    string // "quotes" or "history"
	Tickers string
	Start   string
	End     string
}

// runFetch performs one quotes or history request and writes the same JSON
// document the API would return to out.
func runFetch(ctx context.Context, svc app.Services, req fetchRequest, out io.Writer) error {
	tickers := symbol.Normalize(req.Tickers)
	if len(tickers) == 0 {
		return errNoTickers
	}

	var doc any
	switch req.Kind {
	case "quotes":
		set, err := svc.Quotes.GetQuotes(ctx, tickers)
		if err != nil {
			return err
		}
		doc = dto.NewQuotesResponse(set, time.Now())
	case "history":
		set := svc.History.GetHistory(ctx, tickers, datekey.NewRange(req.Start, req.End))
		doc = dto.NewHistoryResponse(set, nonEmpty(req.Start), nonEmpty(req.End), time.Now())
	default:
		return fmt.Errorf("unknown kind %q (want quotes or history)", req.Kind)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
