package model

import (
	"strconv"
	"strings"
	"time"
)

// dateLayout accepts YYYY-M-D with optional zero padding
const dateLayout = "2006-1-2"

// Accepts reports whether value can be stored in a column of type t.
// Numeric, boolean and date values are trimmed first.
func (t SQLType) Accepts(value string) bool {
	trimmed := strings.TrimSpace(value)
	switch t.Kind {
	case KindText:
		return true
	case KindVarchar:
		return len(value) <= t.Width
	case KindDecimal:
		return t.acceptsDecimal(trimmed)
	case KindBoolean:
		return IsBooleanToken(trimmed)
	case KindInt:
		_, err := strconv.ParseInt(trimmed, 10, t.Width)
		return err == nil
	case KindUint:
		_, err := strconv.ParseUint(trimmed, 10, t.Width)
		return err == nil
	case KindDate:
		_, err := time.Parse(dateLayout, trimmed)
		return err == nil
	default:
		return false
	}
}

// acceptsDecimal checks that value is a decimal literal whose integer part
// fits in Precision-Scale digits. Extra fraction digits are accepted; the
// database rounds them to Scale.
func (t SQLType) acceptsDecimal(value string) bool {
	d, ok := parseDecimal(value)
	if !ok {
		return false
	}
	intDigits, _ := decimalDigits(d)
	return intDigits <= t.Precision-t.Scale
}
