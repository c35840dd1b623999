package tsvsql

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/nao1215/tsvsql/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse_CompressedMatchesPlain(t *testing.T) {
	t.Parallel()

	plain, err := ParseFile(t.Context(), writeTestFile(t, "users.tsv", usersTSV))
	require.NoError(t, err)

	for _, ext := range []string{".gz", ".xz", ".zst"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "users.tsv"+ext)
			require.NoError(t, writeCompressed(path, []byte(usersTSV)))

			table, err := ParseFile(t.Context(), path)
			require.NoError(t, err)
			assert.Equal(t, plain.SQL(), table.SQL())
			assert.Equal(t, plain.HeaderSummary(), table.HeaderSummary())
		})
	}
}

func TestParse_CorruptCompressedFile(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(t.Context(), writeTestFile(t, "users.tsv.gz", usersTSV))
	assert.Error(t, err)
}

func TestParse_XLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"id", "name", "note"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{1, "Alice", "multi\nline"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{2}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ParseFile(t.Context(), path)
	require.NoError(t, err)

	assert.Equal(t, "book", table.Name())
	assert.Equal(t, model.Header{"id", "name", "note"}, table.Header())
	assert.Empty(t, table.BadLines())
	assert.Equal(t, "INSERT INTO book (id, name, note)\nVALUES\n(1,'Alice','multi line'),\n(2,NULL,NULL);", table.InsertSQL())
}

func TestParse_EmptyXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ParseFile(t.Context(), path)
	assert.ErrorIs(t, err, ErrEmptyOrInvalidHeader)
}

func TestParse_InvalidXLSX(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(t.Context(), writeTestFile(t, "broken.xlsx", "not a workbook"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// parquetBytes encodes a small sales table with a null name as parquet
func parquetBytes(t *testing.T) []byte {
	t.Helper()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
		{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
	}, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()
	builder.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2}, nil)
	builder.Field(1).(*array.StringBuilder).AppendValues([]string{"Alice", ""}, []bool{true, false})
	builder.Field(2).(*array.BooleanBuilder).AppendValues([]bool{true, false}, nil)

	record := builder.NewRecord()
	defer record.Release()
	table := array.NewTableFromRecords(schema, []arrow.Record{record})
	defer table.Release()

	var buf bytes.Buffer
	require.NoError(t, pqarrow.WriteTable(table, &buf, 1024, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()))
	return buf.Bytes()
}

func TestParse_Parquet(t *testing.T) {
	t.Parallel()

	data := parquetBytes(t)
	want := "INSERT INTO sales (id, name, active)\nVALUES\n(1,'Alice',1),\n(2,NULL,0);"

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sales.parquet")
		require.NoError(t, writeCompressed(path, data))

		table, err := ParseFile(t.Context(), path)
		require.NoError(t, err)
		assert.Equal(t, "sales", table.Name())
		assert.Equal(t, model.Header{"id", "name", "active"}, table.Header())
		assert.Empty(t, table.BadLines())
		assert.Equal(t, want, table.InsertSQL())
	})

	t.Run("zstd compressed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sales.parquet.zst")
		require.NoError(t, writeCompressed(path, data))

		table, err := ParseFile(t.Context(), path)
		require.NoError(t, err)
		assert.Equal(t, want, table.InsertSQL())
	})
}

func TestParse_InvalidParquet(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(t.Context(), writeTestFile(t, "broken.parquet", "not parquet"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParseFile(t.Context(), writeTestFile(t, "empty.parquet", ""))
	assert.ErrorIs(t, err, ErrEmptyOrInvalidHeader)
}
