package rpn

import "github.com/pkg/errors"

// Code is a closed enumeration of evaluator failure reasons. A Code is
// itself an error, so handlers can `return ErrNotEnoughStack` without an
// extra wrapping step; callers that need the original short strings can
// still go through Strerror.
type Code int

// The closed set of error codes. Values are not part of the public wire
// contract of anything (there is no wire format here) and may be reordered
// freely; callers should compare against the named constants, never the
// numeric value.
const (
	ErrNone Code = iota
	ErrTokenUnrecognized
	ErrNotEnoughStack
	ErrTooMuchStack
	ErrInconsistentUnits
	ErrMustBeInteger
	ErrMustBeUnitless
	ErrMustBeReal
	ErrMustBeNonnegative
	ErrRationalNotImplemented
	ErrDomain
	ErrDimensionOverflow
	ErrUnmatchedControlStatement
	ErrInexactLiteral
)

var codeStrings = map[Code]string{
	ErrNone:                       "success",
	ErrTokenUnrecognized:          "unrecognized token",
	ErrNotEnoughStack:             "not enough args",
	ErrTooMuchStack:               "insufficient stack space",
	ErrInconsistentUnits:          "inconsistent units",
	ErrMustBeInteger:              "arg must be integer",
	ErrMustBeUnitless:             "arg must be unitless",
	ErrMustBeReal:                 "arg must be real",
	ErrMustBeNonnegative:          "arg must be nonnegative",
	ErrRationalNotImplemented:     "noninteger units",
	ErrDomain:                     "domain error",
	ErrDimensionOverflow:          "dimension overflow",
	ErrUnmatchedControlStatement: "unmatched control statement",
	ErrInexactLiteral:             "unrepresentable literal",
}

// Error implements the error interface, returning the same short strings the
// original qrpn_error_string did.
func (c Code) Error() string {
	if s, ok := codeStrings[c]; ok {
		return s
	}
	return "undefined error"
}

// Strerror maps an error returned by this package back to a short
// human-readable string, mirroring the C surface's qrpn_error_string. Any
// error is accepted: if it does not wrap a Code, its own Error() string is
// returned unchanged.
func Strerror(err error) string {
	if err == nil {
		return codeStrings[ErrNone]
	}
	var c Code
	if errors.As(err, &c) {
		return c.Error()
	}
	return err.Error()
}
