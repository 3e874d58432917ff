package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/bistpulse/internal/app"
	"github.com/guttosm/bistpulse/internal/datekey"
	"github.com/guttosm/bistpulse/internal/domain/models"
)

type fakeQuotes struct{ err error }

func (f fakeQuotes) GetQuotes(_ context.Context, tickers []string) (models.QuoteSet, error) {
	if f.err != nil {
		return models.QuoteSet{}, f.err
	}
	return models.QuoteSet{Quotes: map[string]models.Quote{}, Requested: len(tickers)}, nil
}

type fakeHistory struct{ rng *datekey.Range }

func (f fakeHistory) GetHistory(_ context.Context, tickers []string, r datekey.Range) models.HistorySet {
	*f.rng = r
	return models.HistorySet{Requested: len(tickers)}
}

func TestRunFetch(t *testing.T) {
	var rng datekey.Range
	svc := app.Services{Quotes: fakeQuotes{}, History: fakeHistory{rng: &rng}}

	cases := []struct {
		name    string
		req     fetchRequest
		wantErr error
		check   func(t *testing.T, doc map[string]any)
	}{
		{
			name:    "no tickers",
			req:     fetchRequest{Kind: "quotes", Tickers: " , "},
			wantErr: errNoTickers,
		},
		{
			name: "quotes",
			req:  fetchRequest{Kind: "quotes", Tickers: "alark forte"},
			check: func(t *testing.T, doc map[string]any) {
				require.Equal(t, "tradingview:turkey", doc["source"])
				require.EqualValues(t, 2, doc["requested"])
			},
		},
		{
			name: "history",
			req:  fetchRequest{Kind: "history", Tickers: "ALARK", Start: "2024-01-01", End: "2024-01-31"},
			check: func(t *testing.T, doc map[string]any) {
				require.Equal(t, "yahoo:chart", doc["source"])
				require.Equal(t, "2024-01-01", doc["start"])
				require.True(t, rng.Bounded())
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runFetch(context.Background(), svc, tc.req, &out)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
			tc.check(t, doc)
		})
	}
}

func TestRunFetch_Errors(t *testing.T) {
	boom := errors.New("TradingView HTTP 503")
	svc := app.Services{Quotes: fakeQuotes{err: boom}}

	require.ErrorIs(t, runFetch(context.Background(), svc, fetchRequest{Kind: "quotes", Tickers: "ALARK"}, &bytes.Buffer{}), boom)
	require.ErrorContains(t, runFetch(context.Background(), svc, fetchRequest{Kind: "candles", Tickers: "ALARK"}, &bytes.Buffer{}), "unknown kind")
}
