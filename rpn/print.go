package rpn

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

var siBaseAbbreviations = [BaseUnits]string{"m", "kg", "s", "A", "K", "Cd", "mol"}

// formatQuantity renders q the way print does: try a colloquial match
// first, then an SI-derived match, falling back to raw base units.
func formatQuantity(q Quantity) string {
	if s, ok := formatColloquial(q); ok {
		return s
	}
	return formatSI(q)
}

// formatColloquial looks for a non-SI registry entry with the same
// dimensions whose value is within 1e-6 (relative, both directions) of q's
// value; ENTERS_AS_OPERAND entries are printed bare, without the
// value-ratio prefix.
func formatColloquial(q Quantity) (string, bool) {
	if real(q.Value) == 0 {
		return "", false
	}
	for i := range namedQuantities {
		n := &namedQuantities[i]
		if n.siEligible() || !Equivalent(q.Units, n.units) {
			continue
		}
		ratio := q.Value / complex(n.value, 0)
		if cmplx.Abs(ratio) >= 1.000001 || cmplx.Abs(1/ratio) >= 1.000001 {
			continue
		}
		var b strings.Builder
		if !n.entersAsOperand() {
			b.WriteString(formatValue(ratio))
			b.WriteByte(' ')
		}
		b.WriteString(n.displayName())
		b.WriteString(" (")
		b.WriteString(formatSI(q))
		b.WriteByte(')')
		return b.String(), true
	}
	return "", false
}

// formatSI looks for an SI base or derived registry entry that q's
// dimensions are an integer multiple of, trying positive exponents before
// negative ones, and falls back to raw base units if nothing matches.
func formatSI(q Quantity) string {
	for _, sign := range [...]int{1, -1} {
		for i := range namedQuantities {
			n := &namedQuantities[i]
			if !n.siEligible() {
				continue
			}
			exponent := PowerOf(q.Units, n.units)
			if exponent == 0 || exponent*sign <= 0 {
				continue
			}
			var b strings.Builder
			b.WriteString(formatValue(q.Value / complex(n.value, 0)))
			b.WriteByte(' ')
			b.WriteString(n.displayName())
			if exponent != 1 {
				fmt.Fprintf(&b, "^%d", exponent)
			}
			return b.String()
		}
	}
	return formatBaseUnits(q)
}

func formatBaseUnits(q Quantity) string {
	var b strings.Builder
	b.WriteString(formatValue(q.Value))
	for i := 0; i < BaseUnits; i++ {
		if q.Units[i] > 0 {
			fmt.Fprintf(&b, " %s", siBaseAbbreviations[i])
			if q.Units[i] > 1 {
				fmt.Fprintf(&b, "^%d", q.Units[i])
			}
		}
	}
	for i := 0; i < BaseUnits; i++ {
		if q.Units[i] < 0 {
			fmt.Fprintf(&b, " %s^%d", siBaseAbbreviations[i], q.Units[i])
		}
	}
	return b.String()
}

// formatValue renders a bare magnitude, independent of any unit.
func formatValue(v complex128) string {
	re, im := real(v), imag(v)
	switch {
	case math.Abs(re) >= 1e6 && im == 0:
		return fmt.Sprintf("%.16g", re)
	case (re == 0 && im != 0) || math.Abs(re)*1e14 < math.Abs(im):
		switch im {
		case 1:
			return "i"
		case -1:
			return "-i"
		default:
			return fmt.Sprintf("%gi", im)
		}
	default:
		s := fmt.Sprintf("%g", re)
		if im != 0 && math.Abs(im)*1e14 > math.Abs(re) {
			sign := '+'
			if im < 0 {
				sign = '-'
			}
			s += fmt.Sprintf(" %c %gi", sign, math.Abs(im))
		}
		return s
	}
}
