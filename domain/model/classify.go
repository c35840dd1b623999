package model

import (
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// booleanTokens are the lower-case values read as booleans
var booleanTokens = []string{"0", "1", "t", "f", "true", "false"}

// IsBooleanToken reports whether value (case-insensitive) is a boolean token
func IsBooleanToken(value string) bool {
	return slices.Contains(booleanTokens, strings.ToLower(value))
}

// IsIgnored reports whether a trimmed value carries no type information:
// it is empty, spells null in any case, or is one of the ignored words
func IsIgnored(trimmed string, ignored []string) bool {
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return true
	}
	return slices.Contains(ignored, trimmed)
}

// Classify returns the category of a cell. The second result is false when
// the cell is ignored for inference. Dates are never inferred.
func Classify(cell string, ignored []string) (Category, bool) {
	value := strings.TrimSpace(cell)
	if IsIgnored(value, ignored) {
		return CategoryString, false
	}
	if IsBooleanToken(value) {
		return CategoryBoolean, true
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return CategoryInteger, true
	}
	if _, ok := parseDecimal(value); ok {
		return CategoryDecimal, true
	}
	return CategoryString, true
}

// parseDecimal parses a plain or exponent decimal literal. NaN and
// infinities are not decimals.
func parseDecimal(value string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// decimalDigits returns the number of integer and fractional digits of d as
// written, so 1.50 has one integer digit and two fractional digits
func decimalDigits(d decimal.Decimal) (int, int) {
	coefficient := new(big.Int).Abs(d.Coefficient())
	digits := len(coefficient.String())
	exp := int(d.Exponent())

	if exp >= 0 {
		if coefficient.Sign() == 0 {
			return 1, 0
		}
		return digits + exp, 0
	}

	frac := -exp
	return max(digits-frac, 0), frac
}

// magnitudeDigits returns the number of decimal digits in |v|
func magnitudeDigits(v int64) int {
	var magnitude uint64
	if v < 0 {
		magnitude = uint64(-(v + 1)) + 1
	} else {
		magnitude = uint64(v)
	}
	return len(strconv.FormatUint(magnitude, 10))
}

// ParseBoolean returns the truth value of a boolean token. The second result
// is false when value is not a boolean token.
func ParseBoolean(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true":
		return true, true
	case "0", "f", "false":
		return false, true
	default:
		return false, false
	}
}
