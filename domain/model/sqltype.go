package model

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of an SQLType
type Kind int

const (
	// KindText is an unbounded TEXT column
	KindText Kind = iota
	// KindVarchar is a VARCHAR(n) column
	KindVarchar
	// KindDecimal is a DECIMAL(p,s) column
	KindDecimal
	// KindBoolean is a boolean column stored as TINYINT
	KindBoolean
	// KindInt is a signed integer column
	KindInt
	// KindUint is an unsigned integer column
	KindUint
	// KindDate is a DATE column
	KindDate
)

// Varchar widths used by inference and overrides
const (
	VarcharSmall  = 31
	VarcharMedium = 127
	VarcharLarge  = 255
)

// MySQL limits for DECIMAL(p,s)
const (
	MaxDecimalPrecision = 65
	MaxDecimalScale     = 30
)

// SQLType is a concrete column type. Width is the VARCHAR length or the
// integer bit size; Precision and Scale apply to DECIMAL only.
//
// Two values are equal (==) only when kind and payload match. Use SameKind to
// compare variants while ignoring the payload.
type SQLType struct {
	Kind      Kind
	Width     int
	Precision int
	Scale     int
}

// Text returns the TEXT type
func Text() SQLType { return SQLType{Kind: KindText} }

// Varchar returns VARCHAR(width)
func Varchar(width int) SQLType { return SQLType{Kind: KindVarchar, Width: width} }

// Decimal returns DECIMAL(precision, scale)
func Decimal(precision, scale int) SQLType {
	return SQLType{Kind: KindDecimal, Precision: precision, Scale: scale}
}

// Boolean returns the boolean type
func Boolean() SQLType { return SQLType{Kind: KindBoolean} }

// Int returns a signed integer type of the given bit size (8, 16, 32 or 64)
func Int(bits int) SQLType { return SQLType{Kind: KindInt, Width: bits} }

// Uint returns an unsigned integer type of the given bit size (8, 16, 32 or 64)
func Uint(bits int) SQLType { return SQLType{Kind: KindUint, Width: bits} }

// Date returns the DATE type
func Date() SQLType { return SQLType{Kind: KindDate} }

// SameKind reports whether t and other are the same variant, ignoring
// width, precision and scale
func (t SQLType) SameKind(other SQLType) bool {
	return t.Kind == other.Kind
}

// Category returns the broad category the type belongs to
func (t SQLType) Category() Category {
	switch t.Kind {
	case KindText, KindVarchar:
		return CategoryString
	case KindDecimal:
		return CategoryDecimal
	case KindBoolean:
		return CategoryBoolean
	case KindInt, KindUint:
		return CategoryInteger
	case KindDate:
		return CategoryDate
	default:
		return CategoryString
	}
}

// IsNumeric reports whether values of the type are written without quotes
func (t SQLType) IsNumeric() bool {
	return t.Kind == KindInt || t.Kind == KindUint || t.Kind == KindDecimal
}

// integerNames maps a bit size to the MySQL integer type name
var integerNames = map[int]string{
	8:  "TINYINT",
	16: "SMALLINT",
	32: "INT",
	64: "BIGINT",
}

// DDL returns the type as written in a CREATE TABLE statement
func (t SQLType) DDL() string {
	switch t.Kind {
	case KindText:
		return "TEXT"
	case KindVarchar:
		return "VARCHAR(" + strconv.Itoa(t.Width) + ")"
	case KindDecimal:
		return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision, t.Scale)
	case KindBoolean:
		return "TINYINT"
	case KindInt:
		return integerNames[t.Width]
	case KindUint:
		return integerNames[t.Width] + " UNSIGNED"
	case KindDate:
		return "DATE"
	default:
		return "TEXT"
	}
}

// String returns the DDL form of the type
func (t SQLType) String() string {
	return t.DDL()
}
