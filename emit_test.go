package tsvsql

import (
	"testing"

	"github.com/nao1215/tsvsql/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "O'Brien", want: "O''Brien"},
		{in: `a\b`, want: `a\\b`},
		{in: "line\r\nbreak\n", want: "linebreak"},
		{in: `'\'`, want: `''\\''`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLiteral(tt.in), tt.in)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cell      string
		typ       model.SQLType
		nullWords []string
		want      string
	}{
		{name: "empty", cell: "", typ: model.Text(), want: "NULL"},
		{name: "blank", cell: "  ", typ: model.Varchar(31), want: "NULL"},
		{name: "text is quoted", cell: "hi", typ: model.Text(), want: "'hi'"},
		{name: "text keeps spaces", cell: " hi ", typ: model.Text(), want: "' hi '"},
		{name: "varchar too long", cell: "abcdef", typ: model.Varchar(5), want: "NULL"},
		{name: "int is bare and trimmed", cell: " 42 ", typ: model.Int(8), want: "42"},
		{name: "int overflow", cell: "999", typ: model.Int(8), want: "NULL"},
		{name: "uint negative", cell: "-1", typ: model.Uint(16), want: "NULL"},
		{name: "decimal is bare", cell: "3.50", typ: model.Decimal(4, 3), want: "3.50"},
		{name: "decimal junk", cell: "3.5x", typ: model.Decimal(4, 3), want: "NULL"},
		{name: "decimal integer digits overflow", cell: "123456.789", typ: model.Decimal(5, 2), want: "NULL"},
		{name: "decimal extra fraction digits", cell: "123.456", typ: model.Decimal(5, 2), want: "123.456"},
		{name: "boolean true", cell: "T", typ: model.Boolean(), want: "1"},
		{name: "boolean false", cell: "false", typ: model.Boolean(), want: "0"},
		{name: "date is quoted", cell: "2024-02-29", typ: model.Date(), want: "'2024-02-29'"},
		{name: "bad date", cell: "29/02/2024", typ: model.Date(), want: "NULL"},
		{name: "null word", cell: "-", typ: model.Varchar(31), nullWords: []string{"-"}, want: "NULL"},
		{name: "null word compared escaped", cell: "it's", typ: model.Varchar(31), nullWords: []string{"it''s"}, want: "NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatValue(tt.cell, tt.typ, tt.nullWords, literalEscaper))
		})
	}
}

func TestFormatValue_SQLiteQuoting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `'C:\\tmp'`, formatValue(`C:\tmp`, model.Text(), nil, literalEscaper))
	assert.Equal(t, `'C:\tmp'`, formatValue(`C:\tmp`, model.Text(), nil, sqliteEscaper))
	assert.Equal(t, "'O''Brien'", formatValue("O'Brien", model.Text(), nil, sqliteEscaper))
	assert.Equal(t, "'ab'", formatValue("a\r\nb", model.Text(), nil, sqliteEscaper))
}
