package models

import "github.com/guregu/null/v6"

// Quote is the normalized snapshot of a single ticker as returned by the
// quote provider.
//
// Fields:
//   - TVSymbol: Provider symbol the row was reported under (e.g., "BIST:ALARK").
//   - Name: Short provider name, null when not a string.
//   - Description: Long company name, null when not a string.
//   - Price: Last price, null when missing or non-numeric.
//   - ChangePct: Daily change in percent.
//   - ChangeAbs: Daily change in currency units.
//   - Volume: Traded volume.
//
// swagger:model Quote
type Quote struct {
	TVSymbol    string      `json:"tvSymbol" example:"BIST:ALARK"`
	Name        null.String `json:"name" swaggertype:"string" example:"ALARK"`
	Description null.String `json:"description" swaggertype:"string" example:"ALARKO HOLDING"`
	Price       null.Float  `json:"price" swaggertype:"number" example:"102.4"`
	ChangePct   null.Float  `json:"changePct" swaggertype:"number" example:"1.25"`
	ChangeAbs   null.Float  `json:"changeAbs" swaggertype:"number" example:"1.3"`
	Volume      null.Float  `json:"volume" swaggertype:"number" example:"2345678"`
}

// QuoteSet is the outcome of reshaping one quote batch.
//
// Total counts the quotes produced; Requested counts the tickers asked for, so
// callers can see when the provider only covered part of the batch.
type QuoteSet struct {
	Quotes    map[string]Quote
	Total     int
	Requested int
}
