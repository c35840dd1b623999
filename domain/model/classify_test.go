package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cell    string
		ignored []string
		want    Category
		ok      bool
	}{
		{name: "empty", cell: "", ok: false},
		{name: "blank", cell: "   ", ok: false},
		{name: "null any case", cell: "NuLl", ok: false},
		{name: "ignored word", cell: " n/a ", ignored: []string{"n/a"}, ok: false},
		{name: "zero", cell: "0", want: CategoryBoolean, ok: true},
		{name: "one padded", cell: " 1 ", want: CategoryBoolean, ok: true},
		{name: "true upper", cell: "TRUE", want: CategoryBoolean, ok: true},
		{name: "f", cell: "f", want: CategoryBoolean, ok: true},
		{name: "integer", cell: "42", want: CategoryInteger, ok: true},
		{name: "negative integer", cell: "-300", want: CategoryInteger, ok: true},
		{name: "decimal", cell: "3.14", want: CategoryDecimal, ok: true},
		{name: "exponent", cell: "1e3", want: CategoryDecimal, ok: true},
		{name: "beyond int64", cell: "18446744073709551615", want: CategoryDecimal, ok: true},
		{name: "nan is text", cell: "NaN", want: CategoryString, ok: true},
		{name: "inf is text", cell: "Inf", want: CategoryString, ok: true},
		{name: "date is text", cell: "2024-01-02", want: CategoryString, ok: true},
		{name: "word", cell: "Alice", want: CategoryString, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Classify(tt.cell, tt.ignored)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecimalDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		intPart  int
		fracPart int
	}{
		{value: "1.50", intPart: 1, fracPart: 2},
		{value: "12.345", intPart: 2, fracPart: 3},
		{value: "-1.5", intPart: 1, fracPart: 1},
		{value: "0.05", intPart: 0, fracPart: 2},
		{value: "100", intPart: 3, fracPart: 0},
		{value: "1e3", intPart: 4, fracPart: 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			d, ok := parseDecimal(tt.value)
			assert.True(t, ok)
			intPart, fracPart := decimalDigits(d)
			assert.Equal(t, tt.intPart, intPart)
			assert.Equal(t, tt.fracPart, fracPart)
		})
	}
}

func TestMagnitudeDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, magnitudeDigits(0))
	assert.Equal(t, 3, magnitudeDigits(-128))
	assert.Equal(t, 19, magnitudeDigits(-9223372036854775808))
	assert.Equal(t, 19, magnitudeDigits(9223372036854775807))
}

func TestParseBoolean(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"1", "t", "TRUE", " True "} {
		got, ok := ParseBoolean(v)
		assert.True(t, ok, v)
		assert.True(t, got, v)
	}
	for _, v := range []string{"0", "F", "false"} {
		got, ok := ParseBoolean(v)
		assert.True(t, ok, v)
		assert.False(t, got, v)
	}
	_, ok := ParseBoolean("yes")
	assert.False(t, ok)
}
