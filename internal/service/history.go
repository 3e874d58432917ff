package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/bistpulse/internal/datekey"
	"github.com/guttosm/bistpulse/internal/domain/models"
	"github.com/guttosm/bistpulse/internal/logger"
	"github.com/guttosm/bistpulse/internal/reshape"
	"github.com/guttosm/bistpulse/internal/symbol"
)

// DefaultHistoryParallel bounds concurrent chart requests per batch.
const DefaultHistoryParallel = 4

// HistoryService defines the batch price history use case.
type HistoryService interface {
	GetHistory(ctx context.Context, tickers []string, r datekey.Range) models.HistorySet
}

type historyService struct {
	provider ChartProvider
	parallel int
}

// NewHistoryService creates a HistoryService issuing at most parallel chart
// requests at a time. Values below 1 use DefaultHistoryParallel.
func NewHistoryService(provider ChartProvider, parallel int) HistoryService {
	if parallel < 1 {
		parallel = DefaultHistoryParallel
	}
	return &historyService{provider: provider, parallel: parallel}
}

// GetHistory fetches the first symbol.MaxHistoryTickers tickers independently.
// A failing ticker is recorded in Errors and never aborts the others.
func (s *historyService) GetHistory(ctx context.Context, tickers []string, r datekey.Range) models.HistorySet {
	set := models.HistorySet{
		Series:    map[string]models.HistorySeries{},
		Errors:    map[string]string{},
		Requested: len(tickers),
	}

	var mu sync.Mutex
	log := logger.With("history")

	// Plain Group: no shared cancellation between tickers.
	var g errgroup.Group
	g.SetLimit(s.parallel)

	for _, ticker := range symbol.Limit(tickers, symbol.MaxHistoryTickers) {
		g.Go(func() error {
			start := time.Now()
			series, err := s.fetch(ctx, ticker, r)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Str("ticker", ticker).Dur("elapsed", time.Since(start)).Err(err).Msg("history_ticker_failed")
				set.Errors[ticker] = errorMessage(err)
				return nil
			}
			set.Series[ticker] = series
			return nil
		})
	}
	_ = g.Wait()

	set.Returned = len(set.Series)
	return set
}

func (s *historyService) fetch(ctx context.Context, ticker string, r datekey.Range) (models.HistorySeries, error) {
	chartSymbol, err := symbol.ChartSymbol(ticker)
	if err != nil {
		return models.HistorySeries{}, err
	}
	doc, err := s.provider.Chart(ctx, chartSymbol, r)
	if err != nil {
		return models.HistorySeries{}, err
	}
	return reshape.History(chartSymbol, doc), nil
}

func errorMessage(err error) string {
	if errors.Is(err, symbol.ErrInvalidSymbol) {
		return symbol.ErrInvalidSymbol.Error()
	}
	return err.Error()
}
