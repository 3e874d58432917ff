package models

// Price types reported on a HistorySeries.
const (
	PriceTypeAdjClose = "adjclose"
	PriceTypeClose    = "close"
)

// Point is one (timestamp, price) observation of a series.
type Point struct {
	Timestamp int64
	Price     float64
}

// HistorySeries is the daily price series of one ticker.
//
// Timestamps and Close are parallel arrays and always have the same length;
// use Append to add observations.
//
// swagger:model HistorySeries
type HistorySeries struct {
	Symbol     string    `json:"symbol" example:"ALARK.IS"`
	Timestamps []int64   `json:"timestamps"`
	Close      []float64 `json:"close"`
	PriceType  string    `json:"priceType" enums:"adjclose,close" example:"adjclose"`
}

// NewHistorySeries returns an empty series for symbol with capacity for n points.
func NewHistorySeries(symbol string, n int) HistorySeries {
	return HistorySeries{
		Symbol:     symbol,
		Timestamps: make([]int64, 0, n),
		Close:      make([]float64, 0, n),
		PriceType:  PriceTypeClose,
	}
}

// Append adds one observation.
func (s *HistorySeries) Append(ts int64, price float64) {
	s.Timestamps = append(s.Timestamps, ts)
	s.Close = append(s.Close, price)
}

// Len returns the number of observations.
func (s HistorySeries) Len() int {
	return len(s.Timestamps)
}

// Points returns the series as ordered pairs.
func (s HistorySeries) Points() []Point {
	out := make([]Point, len(s.Timestamps))
	for i := range s.Timestamps {
		out[i] = Point{Timestamp: s.Timestamps[i], Price: s.Close[i]}
	}
	return out
}

// HistorySet is the outcome of one batch history request. Every fetched
// ticker lands in exactly one of Series or Errors.
type HistorySet struct {
	Series    map[string]HistorySeries
	Errors    map[string]string
	Requested int
	Returned  int
}
