// Package reshape converts raw provider payloads into the gateway's stable
// records. Every function here is pure: it takes an already decoded payload
// and never performs I/O, so malformed upstream data can be reproduced in
// tests without a network.
package reshape

import (
	"github.com/guregu/null/v6"

	"github.com/guttosm/bistpulse/internal/domain/models"
	"github.com/guttosm/bistpulse/internal/payload"
	"github.com/guttosm/bistpulse/internal/symbol"
)

// QuoteColumns is the column order requested from the scanner; row values
// are positional in this order.
var QuoteColumns = []string{"close", "change", "change_abs", "volume", "description", "name"}

const (
	colPrice = iota
	colChangePct
	colChangeAbs
	colVolume
	colDescription
	colName
)

// Quotes reshapes a scanner response into quotes keyed by ticker.
//
// Expected shape:
//
//	{"data": [{"s": "BIST:ALARK", "d": [price, changePct, changeAbs, volume, description, name]}, ...]}
//
// Rows that are not objects, or whose symbol yields no ticker, are skipped.
// Columns are read one by one: a missing or wrongly typed value becomes null
// without affecting its neighbours. When two rows map to the same ticker the
// later one wins.
func Quotes(doc any, requested int) models.QuoteSet {
	rows := payload.List(payload.Field(doc, "data"))
	quotes := make(map[string]models.Quote, len(rows))

	for _, row := range rows {
		if _, ok := row.(map[string]any); !ok {
			continue
		}
		tvSymbol, _ := payload.String(payload.Field(row, "s"))
		ticker := symbol.TickerFromQuoteSymbol(tvSymbol)
		if ticker == "" {
			continue
		}

		cols := payload.List(payload.Field(row, "d"))
		quotes[ticker] = models.Quote{
			TVSymbol:    tvSymbol,
			Name:        textAt(cols, colName),
			Description: textAt(cols, colDescription),
			Price:       numberAt(cols, colPrice),
			ChangePct:   numberAt(cols, colChangePct),
			ChangeAbs:   numberAt(cols, colChangeAbs),
			Volume:      numberAt(cols, colVolume),
		}
	}

	return models.QuoteSet{
		Quotes:    quotes,
		Total:     len(quotes),
		Requested: requested,
	}
}

func numberAt(cols []any, i int) null.Float {
	f, ok := payload.Float(payload.Index(cols, i))
	return null.NewFloat(f, ok)
}

func textAt(cols []any, i int) null.String {
	s, ok := payload.String(payload.Index(cols, i))
	return null.NewString(s, ok)
}
