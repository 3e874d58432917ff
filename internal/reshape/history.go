package reshape

import (
	"github.com/guttosm/bistpulse/internal/domain/models"
	"github.com/guttosm/bistpulse/internal/payload"
)

// History reshapes a chart response into a daily series for symbol.
//
// Expected shape:
//
//	{"chart": {"result": [{
//	    "timestamp": [...],
//	    "indicators": {
//	        "quote":    [{"close":    [...]}],
//	        "adjclose": [{"adjclose": [...]}]
//	    }
//	}]}}
//
// A broken level anywhere in that path reads as an empty list, so the result
// may be empty but is never an error. For every timestamp the adjusted close
// is preferred, then the raw close; indexes with neither, or whose values do
// not coerce to numbers, are dropped.
//
// PriceType is "adjclose" whenever the adjusted close list is non-empty, even
// if some points fell back to the raw close.
func History(symbol string, doc any) models.HistorySeries {
	result := payload.First(payload.Path(doc, "chart", "result"))
	indicators := payload.Field(result, "indicators")

	timestamps := payload.List(payload.Field(result, "timestamp"))
	closes := payload.List(payload.Field(payload.First(payload.Field(indicators, "quote")), "close"))
	adjCloses := payload.List(payload.Field(payload.First(payload.Field(indicators, "adjclose")), "adjclose"))

	series := models.NewHistorySeries(symbol, len(timestamps))
	if len(adjCloses) > 0 {
		series.PriceType = models.PriceTypeAdjClose
	}

	for i, raw := range timestamps {
		v := payload.Index(adjCloses, i)
		if v == nil {
			v = payload.Index(closes, i)
		}
		if v == nil {
			continue
		}

		ts, ok := payload.Int(raw)
		if !ok {
			continue
		}
		price, ok := payload.Float(v)
		if !ok {
			continue
		}
		series.Append(ts, price)
	}

	return series
}
