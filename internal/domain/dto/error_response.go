package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx response.
//
// Fields:
//   - Message: Human readable error, stable enough for clients to display.
//   - ErrorDetails: Underlying cause, omitted when there is none.
//   - Timestamp: Time the error was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"error" example:"tickers is required"`
	ErrorDetails string    `json:"details,omitempty" example:"TradingView HTTP 503"`
	Timestamp    time.Time `json:"timestamp" example:"2024-05-01T12:00:00Z"`
}

// Error makes ErrorResponse usable as an error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
