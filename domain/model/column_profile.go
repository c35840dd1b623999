package model

import (
	"math"
	"strconv"
	"strings"
)

// integerTier is one candidate integer type with the range it can hold
type integerTier struct {
	typ      SQLType
	min      int64
	max      uint64
	unsigned bool
}

// integerTiers lists integer types from the narrowest to the widest,
// signed before unsigned at each width
var integerTiers = []integerTier{
	{typ: Int(8), min: math.MinInt8, max: math.MaxInt8},
	{typ: Uint(8), max: math.MaxUint8, unsigned: true},
	{typ: Int(16), min: math.MinInt16, max: math.MaxInt16},
	{typ: Uint(16), max: math.MaxUint16, unsigned: true},
	{typ: Int(32), min: math.MinInt32, max: math.MaxInt32},
	{typ: Uint(32), max: math.MaxUint32, unsigned: true},
	{typ: Int(64), min: math.MinInt64, max: math.MaxInt64},
	{typ: Uint(64), max: math.MaxUint64, unsigned: true},
}

// ColumnProfile collects the evidence seen in one column and resolves it to
// a concrete SQL type.
type ColumnProfile struct {
	name       string
	categories CategorySet
	override   *Override

	maxWidth  int // longest classified raw cell in bytes
	hasInt    bool
	minInt    int64
	maxInt    int64
	intDigits int // integer digits of integers and decimals
	fracDigit int // fractional digits of decimals
}

// NewColumnProfile creates a profile for the header name. Spaces in the name
// are replaced with underscores.
func NewColumnProfile(name string) *ColumnProfile {
	return &ColumnProfile{name: DisplayName(name)}
}

// DisplayName trims a header name and replaces its spaces with underscores
func DisplayName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// Name returns the display name of the column
func (p *ColumnProfile) Name() string {
	return p.name
}

// SetOverride pins the column type
func (p *ColumnProfile) SetOverride(o Override) {
	p.override = &o
}

// Override returns the override, if any
func (p *ColumnProfile) Override() (Override, bool) {
	if p.override == nil {
		return Override{}, false
	}
	return *p.override, true
}

// Observe classifies cell and updates the statistics. Ignored cells are
// skipped.
func (p *ColumnProfile) Observe(cell string, ignored []string) {
	category, ok := Classify(cell, ignored)
	if !ok {
		return
	}
	value := strings.TrimSpace(cell)
	p.categories = p.categories.Add(category)
	p.maxWidth = max(p.maxWidth, len(cell))

	switch category {
	case CategoryBoolean:
		// 0 and 1 also count as integers when the column widens
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			p.observeInt(n)
		}
	case CategoryInteger:
		n, _ := strconv.ParseInt(value, 10, 64)
		p.observeInt(n)
	case CategoryDecimal:
		d, _ := parseDecimal(value)
		intDigits, fracDigits := decimalDigits(d)
		p.intDigits = max(p.intDigits, intDigits)
		p.fracDigit = max(p.fracDigit, fracDigits)
	case CategoryDate, CategoryString:
	}
}

func (p *ColumnProfile) observeInt(n int64) {
	if !p.hasInt {
		p.minInt, p.maxInt, p.hasInt = n, n, true
	} else {
		p.minInt = min(p.minInt, n)
		p.maxInt = max(p.maxInt, n)
	}
	p.intDigits = max(p.intDigits, magnitudeDigits(n))
}

// Categories returns the observed categories from the narrowest to the broadest
func (p *ColumnProfile) Categories() CategorySet {
	return p.categories
}

// MixedTypes reports whether more than one category was observed
func (p *ColumnProfile) MixedTypes() bool {
	return p.categories.Len() > 1
}

// MaxWidth returns the byte length of the longest classified cell
func (p *ColumnProfile) MaxWidth() int {
	return p.maxWidth
}

// Resolve returns the concrete type of the column. A full override is
// returned as is. A category override replaces the inferred category while
// the statistics still decide width and precision.
func (p *ColumnProfile) Resolve() SQLType {
	category := Broadest(p.categories)
	if p.override != nil {
		if t, ok := p.override.Type(); ok {
			return t
		}
		category = p.override.Category()
	}

	switch category {
	case CategoryBoolean:
		return Boolean()
	case CategoryInteger:
		return p.integerType()
	case CategoryDecimal:
		return p.decimalType()
	case CategoryDate:
		return Date()
	case CategoryString:
		return varcharFor(p.maxWidth)
	default:
		return varcharFor(p.maxWidth)
	}
}

// integerType returns the narrowest tier covering the observed range
func (p *ColumnProfile) integerType() SQLType {
	if !p.hasInt {
		return Int(8)
	}
	for _, tier := range integerTiers {
		if tier.unsigned {
			if p.minInt >= 0 && uint64(p.maxInt) <= tier.max {
				return tier.typ
			}
			continue
		}
		if p.minInt >= tier.min && p.maxInt <= int64(tier.max) {
			return tier.typ
		}
	}
	return Int(64)
}

// decimalType sizes DECIMAL(p,s) from the digit counts
func (p *ColumnProfile) decimalType() SQLType {
	scale := min(p.fracDigit+1, MaxDecimalScale)
	precision := min(p.intDigits+p.fracDigit+1, MaxDecimalPrecision)
	return Decimal(max(precision, scale), scale)
}

// varcharFor returns the narrowest string type holding width bytes
func varcharFor(width int) SQLType {
	switch {
	case width <= VarcharSmall:
		return Varchar(VarcharSmall)
	case width <= VarcharMedium:
		return Varchar(VarcharMedium)
	case width <= VarcharLarge:
		return Varchar(VarcharLarge)
	default:
		return Text()
	}
}
