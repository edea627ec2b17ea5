package rpn

import (
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// The four accepted ISO-8601-like timestamp layouts. Each contains both 'T'
// and 'Z', which is how evaluateLiteral decides to try this path at all.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05Z",
	"20060102T150405.999999Z",
	"20060102T150405Z",
}

// parseTimestamp parses one of the four accepted forms and returns Unix
// epoch seconds (with microsecond-resolution fractional part), interpreted
// as UTC.
func parseTimestamp(token string) (float64, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, token)
		if err == nil {
			sec := float64(t.Unix())
			sec += float64(t.Nanosecond()) / 1e9
			return sec, nil
		}
	}
	return 0, ErrTokenUnrecognized
}

// opDate implements the `date` operator: it pops a second-dimensioned
// real off the stack and pushes six dimensionless quantities (year, month,
// day, hour, minute, second+fraction) taken from the UTC broken-down form of
// the corresponding instant.
func opDate(s *Stack) error {
	q, err := s.Pop()
	if err != nil {
		return err
	}
	if !Equivalent(q.Units, unitsOfTime) {
		return errors.Wrap(ErrInconsistentUnits, "date")
	}
	if imag(q.Value) != 0 {
		return ErrMustBeReal
	}
	sec := real(q.Value)
	whole := int64(sec)
	frac := sec - float64(whole)
	t := time.Unix(whole, 0).UTC()
	fields := []float64{
		float64(t.Year()),
		float64(t.Month()),
		float64(t.Day()),
		float64(t.Hour()),
		float64(t.Minute()),
		float64(t.Second()) + frac,
	}
	for _, f := range fields {
		if err := s.Push(Quantity{Value: complex(f, 0)}); err != nil {
			return err
		}
	}
	return nil
}

// parseDMS converts the degree, minute and second fields of a
// <deg>[d°]<min>[m']<sec>[s"] angle literal to radians, sign taken from the
// degrees field.
func parseDMS(deg, min, sec float64) float64 {
	sign := 1.0
	if deg < 0 {
		sign = -1.0
		deg = -deg
	}
	return sign * (deg + min/60 + sec/3600) * math.Pi / 180
}

// parseIntField reads a run of ASCII digits starting at i and returns the
// integer value, the index just past the digits, and whether at least one
// digit was consumed.
func parseIntField(s string, i int) (int, int, bool) {
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, start, false
	}
	n, _ := strconv.Atoi(s[start:i])
	return n, i, true
}
