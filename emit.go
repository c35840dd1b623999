package tsvsql

import (
	"slices"
	"strings"

	"github.com/nao1215/tsvsql/domain/model"
)

// sqlNull is the literal written for missing or invalid values
const sqlNull = "NULL"

// literalEscaper doubles quotes and backslashes and drops line breaks
var literalEscaper = strings.NewReplacer(
	"'", "''",
	`\`, `\\`,
	"\r", "",
	"\n", "",
)

// sqliteEscaper doubles quotes and drops line breaks. SQLite keeps
// backslashes in string literals as they are.
var sqliteEscaper = strings.NewReplacer(
	"'", "''",
	"\r", "",
	"\n", "",
)

// escapeLiteral prepares s for use inside a single-quoted MySQL string
func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// formatValue renders one cell for an INSERT tuple. Empty cells, cells the
// column type rejects and cells whose escaped text is a null word become
// NULL. Numbers are written bare, booleans as 1 or 0 and everything else
// is quoted with quote.
func formatValue(cell string, typ model.SQLType, nullWords []string, quote *strings.Replacer) string {
	if strings.TrimSpace(cell) == "" || !typ.Accepts(cell) {
		return sqlNull
	}
	escaped := escapeLiteral(cell)
	if slices.Contains(nullWords, escaped) {
		return sqlNull
	}
	if typ.IsNumeric() {
		return strings.TrimSpace(cell)
	}
	if typ.Kind == model.KindBoolean {
		if v, _ := model.ParseBoolean(cell); v {
			return "1"
		}
		return "0"
	}
	return "'" + quote.Replace(cell) + "'"
}

// columnNames returns the column names with keywords escaped
func (t *Table) columnNames() []string {
	names := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		names = append(names, escapeIdentifier(c.Name(), t.keywordSuffix))
	}
	return names
}

// CreateTableSQL renders the CREATE TABLE statement:
//
//	CREATE TABLE users (
//	  id TINYINT,
//	  name VARCHAR(31)
//	);
func (t *Table) CreateTableSQL() string {
	names := t.columnNames()

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(t.name)
	sb.WriteString(" (\n")
	for i, c := range t.columns {
		sb.WriteString("  ")
		sb.WriteString(names[i])
		sb.WriteByte(' ')
		sb.WriteString(c.Resolve().DDL())
		if i < len(t.columns)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(");")
	return sb.String()
}

// InsertSQL renders a single INSERT INTO statement holding every accepted
// row. It returns an empty string when there are no rows.
//
//	INSERT INTO users (id, name)
//	VALUES
//	(1,'Alice'),
//	(2,'Bob');
func (t *Table) InsertSQL() string {
	return t.insertSQL(literalEscaper)
}

// insertSQL renders the INSERT INTO statement quoting text with quote
func (t *Table) insertSQL(quote *strings.Replacer) string {
	if len(t.records) == 0 {
		return ""
	}
	types := t.ColumnTypes()

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(t.name)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(t.columnNames(), ", "))
	sb.WriteString(")\nVALUES\n")

	values := make([]string, len(types))
	for i, record := range t.records {
		for j, cell := range record {
			values[j] = formatValue(cell, types[j], t.nullWords, quote)
		}
		sb.WriteByte('(')
		sb.WriteString(strings.Join(values, ","))
		sb.WriteByte(')')
		if i < len(t.records)-1 {
			sb.WriteString(",\n")
		}
	}
	sb.WriteByte(';')
	return sb.String()
}

// SQL renders the CREATE TABLE statement followed by the INSERT INTO
// statement, separated by a blank line and ending with a newline
func (t *Table) SQL() string {
	out := t.CreateTableSQL() + "\n"
	if insert := t.InsertSQL(); insert != "" {
		out += "\n" + insert + "\n"
	}
	return out
}

// Statements returns the CREATE TABLE statement and, when there are rows,
// the INSERT INTO statement, both ready to run on SQLite. They differ from
// SQL only in that backslashes are not escaped.
func (t *Table) Statements() []string {
	stmts := []string{t.CreateTableSQL()}
	if insert := t.insertSQL(sqliteEscaper); insert != "" {
		stmts = append(stmts, insert)
	}
	return stmts
}
