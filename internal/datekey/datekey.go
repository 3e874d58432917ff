// Package datekey converts "YYYY-MM-DD" calendar keys into Unix-second
// boundaries for chart requests.
package datekey

import (
	"regexp"
	"strings"
	"time"
)

// Layout is the only accepted calendar key format.
const Layout = "2006-01-02"

// DaySeconds is added to an end key so the whole calendar day is included.
const DaySeconds int64 = 24 * 60 * 60

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Parse returns the UTC-midnight Unix seconds of a "YYYY-MM-DD" key.
// Empty or malformed input reports ok=false; it is never an error.
func Parse(value string) (int64, bool) {
	s := strings.TrimSpace(value)
	if s == "" || !keyPattern.MatchString(s) {
		return 0, false
	}
	d, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return 0, false
	}
	return d.Unix(), true
}

// Range is an optional pair of chart boundaries in Unix seconds.
// End, when set, already points past the last requested day.
type Range struct {
	Start *int64
	End   *int64
}

// NewRange parses the user supplied start/end keys. The end boundary is
// moved forward by one day so the given end date is inclusive.
func NewRange(startKey, endKey string) Range {
	var r Range
	if s, ok := Parse(startKey); ok {
		r.Start = &s
	}
	if e, ok := Parse(endKey); ok {
		e += DaySeconds
		r.End = &e
	}
	return r
}

// Bounded reports whether both boundaries are present.
func (r Range) Bounded() bool {
	return r.Start != nil && r.End != nil
}
