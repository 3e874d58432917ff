package service

import (
	"context"

	"github.com/guttosm/bistpulse/internal/domain/models"
	"github.com/guttosm/bistpulse/internal/logger"
	"github.com/guttosm/bistpulse/internal/reshape"
	"github.com/guttosm/bistpulse/internal/symbol"
)

// QuoteService defines the quote snapshot use case.
type QuoteService interface {
	GetQuotes(ctx context.Context, tickers []string) (models.QuoteSet, error)
}

type quoteService struct {
	provider QuoteProvider
}

func NewQuoteService(provider QuoteProvider) QuoteService {
	return &quoteService{provider: provider}
}

// GetQuotes fetches one snapshot for the already normalized tickers. A
// provider failure fails the whole batch and is returned unchanged, its
// message is what callers see.
func (s *quoteService) GetQuotes(ctx context.Context, tickers []string) (models.QuoteSet, error) {
	if len(tickers) == 0 {
		return models.QuoteSet{Quotes: map[string]models.Quote{}}, nil
	}

	doc, err := s.provider.Scan(ctx, symbol.QuoteSymbols(tickers))
	if err != nil {
		return models.QuoteSet{}, err
	}

	set := reshape.Quotes(doc, len(tickers))
	if set.Total < set.Requested {
		logger.With("quotes").Debug().Int("requested", set.Requested).Int("total", set.Total).Msg("partial_quote_coverage")
	}
	return set, nil
}
