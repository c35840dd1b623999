// Package model provides the domain model for tsvsql: the broad value
// categories, the concrete SQL types they widen into, and the per-column
// profile that collects evidence while a file is scanned.
package model

import "strings"

// Category is a broad class of cell value. Categories are ordered from the
// narrowest to the broadest.
type Category int

const (
	// CategoryBoolean represents 0/1, t/f and true/false
	CategoryBoolean Category = iota
	// CategoryInteger represents 64-bit signed integers
	CategoryInteger
	// CategoryDecimal represents decimal numbers
	CategoryDecimal
	// CategoryDate represents dates. It only arises from an override.
	CategoryDate
	// CategoryString represents any other text
	CategoryString
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryBoolean:
		return "boolean"
	case CategoryInteger:
		return "integer"
	case CategoryDecimal:
		return "decimal"
	case CategoryDate:
		return "date"
	case CategoryString:
		return "string"
	default:
		return "string"
	}
}

// allCategories lists categories from the narrowest to the broadest
var allCategories = []Category{
	CategoryBoolean,
	CategoryInteger,
	CategoryDecimal,
	CategoryDate,
	CategoryString,
}

// CategorySet is a set of observed categories
type CategorySet uint8

// NewCategorySet creates a set holding the given categories
func NewCategorySet(categories ...Category) CategorySet {
	var s CategorySet
	for _, c := range categories {
		s = s.Add(c)
	}
	return s
}

// Add returns the set with c added
func (s CategorySet) Add(c Category) CategorySet {
	return s | 1<<uint(c)
}

// Has reports whether c is in the set
func (s CategorySet) Has(c Category) bool {
	return s&(1<<uint(c)) != 0
}

// Len returns the number of categories in the set
func (s CategorySet) Len() int {
	n := 0
	for _, c := range allCategories {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Categories returns the members from the narrowest to the broadest
func (s CategorySet) Categories() []Category {
	out := make([]Category, 0, len(allCategories))
	for _, c := range allCategories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String joins the member names with commas
func (s CategorySet) String() string {
	names := make([]string, 0, len(allCategories))
	for _, c := range s.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// Broadest returns the widest category in the set.
// Priority: string > date > decimal > integer > boolean. An empty set is string.
func Broadest(s CategorySet) Category {
	for i := len(allCategories) - 1; i >= 0; i-- {
		if s.Has(allCategories[i]) {
			return allCategories[i]
		}
	}
	return CategoryString
}
