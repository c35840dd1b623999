package tsvsql

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/nao1215/tsvsql/domain/model"
)

// readParquet renders a parquet file as tab separated text: the schema
// field names form the header line and every row follows. Null values
// become empty cells.
func readParquet(f *model.File) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if f.IsCompressed() {
		data, err = readDecompressed(f.Path())
	} else {
		data, err = os.ReadFile(f.Path())
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty parquet file: %s", ErrEmptyOrInvalidHeader, f.Path())
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, f.Path(), err)
	}
	defer func() {
		_ = pqReader.Close() // Ignore close error
	}()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}
	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet table: %w", err)
	}
	defer table.Release()

	schema := table.Schema()
	names := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		names[i] = cellReplacer.Replace(field.Name)
	}

	var buf bytes.Buffer
	buf.WriteString(strings.Join(names, cellSeparator))
	buf.WriteByte('\n')

	tableReader := array.NewTableReader(table, 0)
	defer tableReader.Release()

	cells := make([]string, len(names))
	for tableReader.Next() {
		batch := tableReader.Record()
		for row := range int(batch.NumRows()) {
			for col := range cells {
				column := batch.Column(col)
				cells[col] = ""
				if !column.IsNull(row) {
					cells[col] = cellReplacer.Replace(column.ValueStr(row))
				}
			}
			buf.WriteString(strings.Join(cells, cellSeparator))
			buf.WriteByte('\n')
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("failed to read parquet rows: %w", err)
	}
	return buf.Bytes(), nil
}
