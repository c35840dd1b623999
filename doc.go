// Package tsvsql infers SQL column types from tab separated files and
// renders CREATE TABLE and INSERT INTO statements for them.
//
// Every cell of a column is classified as boolean, integer, decimal or
// string. The broadest category seen wins and the observed statistics size
// the concrete type: the longest string picks VARCHAR(31), VARCHAR(127),
// VARCHAR(255) or TEXT, the integer range picks the narrowest TINYINT to
// BIGINT (UNSIGNED when nothing is negative), and the digit counts size
// DECIMAL(p,s).
//
// # Basic Usage
//
//	table, err := tsvsql.ParseFile(ctx, "users.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(table.CreateTableSQL())
//	fmt.Println(table.InsertSQL())
//
// # Advanced Usage
//
// The builder exposes every setting:
//
//	builder, err := tsvsql.NewBuilder().
//	    AddPath("users.tsv.gz").
//	    SetTableName("users").
//	    SetNullWords("n/a").
//	    SetColumnType("age", "ui8").
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, err := builder.Parse(ctx)
//
// # Input
//
// Plain text files are split on Unix, classic Mac or Windows newlines.
// Files ending in .gz, .bz2, .xz or .zst are decompressed first, and the
// first sheet of an .xlsx workbook and the rows of a .parquet file are read
// as if they were tab separated.
// Rows whose cell count differs from the header are reported as bad lines
// and left out of the output.
//
// # Output
//
// Cells the resolved type rejects, empty cells and null words are written
// as NULL. Column names that are reserved words get a suffix ("X" by
// default). WriteSQLFile stores the text, optionally compressed, and
// LoadSQLite or Open load it into SQLite.
package tsvsql
