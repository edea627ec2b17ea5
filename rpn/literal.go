package rpn

import (
	"math"
	"strconv"
	"strings"
)

var reservedAtoms = map[string]complex128{
	"pi":  complex(math.Pi, 0),
	"-pi": complex(-math.Pi, 0),
	"i":   complex(0, 1),
	"-i":  complex(0, -1),
	"nan": complex(math.NaN(), 0),
}

// evaluateLiteral implements the literal classification cascade: reserved
// atoms, then a strtod-style numeric parse with DMS-angle, ISO-8601
// timestamp, imaginary-suffix and k/M/G-suffix extensions. It reports
// (wasLiteral, err) with the same contract as evaluateUnit: false+nil means
// try the next classifier.
func evaluateLiteral(stack *Stack, token string) (bool, error) {
	if v, ok := reservedAtoms[token]; ok {
		return true, stack.Push(Quantity{Value: v})
	}

	value, end, ok := scanFloat(token)
	if !ok || isAlpha(token[0]) {
		return false, nil
	}
	remainder := token[end:]

	if deg, isDMS := tryParseDMS(value, remainder); isDMS {
		return true, stack.Push(Quantity{Value: complex(deg, 0)})
	}

	if strings.IndexByte(token, 'T') >= 0 && strings.IndexByte(token, 'Z') >= 0 {
		sec, err := parseTimestamp(token)
		if err != nil {
			return false, nil
		}
		return true, stack.Push(Quantity{Value: complex(sec, 0), Units: unitsOfTime})
	}

	if remainder == "i" {
		return true, stack.Push(Quantity{Value: complex(0, value)})
	}

	if len(remainder) == 1 {
		switch remainder[0] {
		case 'k':
			return true, stack.Push(Quantity{Value: complex(value*1e3, 0)})
		case 'M':
			return true, stack.Push(Quantity{Value: complex(value*1e6, 0)})
		case 'G':
			return true, stack.Push(Quantity{Value: complex(value*1e9, 0)})
		case 'f':
			return true, stack.Push(Quantity{Value: complex(value, 0)})
		}
	}

	if remainder == "" {
		return true, stack.Push(Quantity{Value: complex(value, 0)})
	}

	// malformed trailing text: not a recognized literal shape, let the unit
	// parser have a look at the whole token.
	return false, nil
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// scanFloat consumes the longest strtod-style numeric prefix of token: an
// optional sign, digits, an optional fractional part, and an optional
// exponent. It returns the parsed value, the index just past what was
// consumed, and whether anything was consumed at all.
func scanFloat(token string) (float64, int, bool) {
	i := 0
	n := len(token)
	if i < n && (token[i] == '+' || token[i] == '-') {
		i++
	}
	digitsStart := i
	for i < n && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	hasIntDigits := i > digitsStart
	if i < n && token[i] == '.' {
		i++
		fracStart := i
		for i < n && token[i] >= '0' && token[i] <= '9' {
			i++
		}
		if !hasIntDigits && i == fracStart {
			return 0, 0, false
		}
	} else if !hasIntDigits {
		return 0, 0, false
	}
	if i < n && (token[i] == 'e' || token[i] == 'E') {
		j := i + 1
		if j < n && (token[j] == '+' || token[j] == '-') {
			j++
		}
		expStart := j
		for j < n && token[j] >= '0' && token[j] <= '9' {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	v, err := strconv.ParseFloat(token[:i], 64)
	if err != nil {
		return 0, 0, false
	}
	return v, i, true
}

// tryParseDMS recognizes a DMS angle suffix: a 'd' or '°' marker after the
// already-parsed degree value, followed by an optional minutes field (with
// its own 'm'/'\'' marker) and an optional seconds field (with its own
// 's'/'"' marker). It returns the angle in radians.
func tryParseDMS(deg float64, remainder string) (float64, bool) {
	i := 0
	switch {
	case strings.HasPrefix(remainder, "°"):
		i = len("°")
	case strings.HasPrefix(remainder, "d"):
		i = 1
	default:
		return 0, false
	}

	min, i2, hasMin := parseIntField(remainder, i)
	minutes := 0.0
	if hasMin {
		minutes = float64(min)
		i = i2
		if i < len(remainder) && (remainder[i] == 'm' || remainder[i] == '\'') {
			i++
		}
	}

	sec, i3, hasSec := parseIntField(remainder, i)
	seconds := 0.0
	if hasSec {
		seconds = float64(sec)
		i = i3
		if i < len(remainder) && (remainder[i] == 's' || remainder[i] == '"') {
			i++
		}
	}

	return parseDMS(deg, minutes, seconds), true
}
