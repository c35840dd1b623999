package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Override is a user supplied column type. A full override fixes the
// concrete type; a category override only fixes the broad category and lets
// the observed data decide width and precision.
type Override struct {
	typ      SQLType
	category Category
	full     bool
}

// FullOverride pins a column to exactly t
func FullOverride(t SQLType) Override {
	return Override{typ: t, category: t.Category(), full: true}
}

// CategoryOverride pins a column to category c
func CategoryOverride(c Category) Override {
	return Override{category: c}
}

// Category returns the broad category of the override
func (o Override) Category() Category {
	return o.category
}

// Type returns the concrete type of a full override
func (o Override) Type() (SQLType, bool) {
	return o.typ, o.full
}

// String returns the DDL type or the category name
func (o Override) String() string {
	if o.full {
		return o.typ.DDL()
	}
	return o.category.String()
}

// overrideTokens maps fixed tokens to overrides
var overrideTokens = map[string]Override{
	"text":    FullOverride(Text()),
	"vc255":   FullOverride(Varchar(VarcharLarge)),
	"vc127":   FullOverride(Varchar(VarcharMedium)),
	"vc31":    FullOverride(Varchar(VarcharSmall)),
	"i8":      FullOverride(Int(8)),
	"ui8":     FullOverride(Uint(8)),
	"i16":     FullOverride(Int(16)),
	"ui16":    FullOverride(Uint(16)),
	"i32":     FullOverride(Int(32)),
	"ui32":    FullOverride(Uint(32)),
	"i64":     FullOverride(Int(64)),
	"ui64":    FullOverride(Uint(64)),
	"bool":    FullOverride(Boolean()),
	"date":    FullOverride(Date()),
	"string":  CategoryOverride(CategoryString),
	"int":     CategoryOverride(CategoryInteger),
	"decimal": CategoryOverride(CategoryDecimal),
	"boolean": CategoryOverride(CategoryBoolean),
}

// ParseOverride converts a column type token into an Override.
//
// Accepted tokens (case-insensitive): text, vc255, vc127, vc31,
// decimal_P_S, i8, ui8, i16, ui16, i32, ui32, i64, ui64, bool, date, and the
// category tokens string, int, decimal and boolean.
func ParseOverride(token string) (Override, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if o, ok := overrideTokens[t]; ok {
		return o, nil
	}
	if strings.HasPrefix(t, "decimal_") {
		return parseDecimalOverride(token, t)
	}
	return Override{}, fmt.Errorf("%w: %s", ErrUnknownType, token)
}

// parseDecimalOverride parses decimal_P_S
func parseDecimalOverride(token, t string) (Override, error) {
	parts := strings.Split(t, "_")
	if len(parts) != 3 {
		return Override{}, fmt.Errorf("%w: %s: want decimal_P_S", ErrUnknownType, token)
	}
	precision, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Override{}, fmt.Errorf("%w: %s: bad precision", ErrUnknownType, token)
	}
	scale, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return Override{}, fmt.Errorf("%w: %s: bad scale", ErrUnknownType, token)
	}
	if precision == 0 || precision > MaxDecimalPrecision || scale > MaxDecimalScale || scale > precision {
		return Override{}, fmt.Errorf("%w: %s: precision must be 1-%d and scale 0-%d, not above precision",
			ErrUnknownType, token, MaxDecimalPrecision, MaxDecimalScale)
	}
	return FullOverride(Decimal(int(precision), int(scale))), nil
}
