package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		format      Format
		compression CompressionType
		tableName   string
	}{
		{name: "TSV file", path: "data/users.tsv", format: FormatText, compression: CompressionNone, tableName: "users"},
		{name: "txt file", path: "users.txt", format: FormatText, compression: CompressionNone, tableName: "users"},
		{name: "no extension", path: "users", format: FormatText, compression: CompressionNone, tableName: "users"},
		{name: "gzip TSV", path: "users.tsv.gz", format: FormatText, compression: CompressionGZ, tableName: "users"},
		{name: "bzip2 TSV", path: "users.tsv.bz2", format: FormatText, compression: CompressionBZ2, tableName: "users"},
		{name: "xz TSV", path: "users.tsv.xz", format: FormatText, compression: CompressionXZ, tableName: "users"},
		{name: "zstd TSV", path: "users.tsv.zst", format: FormatText, compression: CompressionZSTD, tableName: "users"},
		{name: "XLSX", path: "/tmp/Report.XLSX", format: FormatXLSX, compression: CompressionNone, tableName: "Report"},
		{name: "compressed XLSX", path: "book.xlsx.gz", format: FormatXLSX, compression: CompressionGZ, tableName: "book"},
		{name: "Parquet", path: "/data/sales.parquet", format: FormatParquet, compression: CompressionNone, tableName: "sales"},
		{name: "compressed Parquet", path: "sales.Parquet.zst", format: FormatParquet, compression: CompressionZSTD, tableName: "sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewFile(tt.path)
			assert.Equal(t, tt.path, f.Path())
			assert.Equal(t, tt.format, f.Format())
			assert.Equal(t, tt.compression, f.Compression())
			assert.Equal(t, tt.compression != CompressionNone, f.IsCompressed())
			assert.Equal(t, tt.tableName, f.TableName())
		})
	}
}

func TestCompressionType_Extension(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CompressionNone.Extension())
	assert.Equal(t, ".gz", CompressionGZ.Extension())
	assert.Equal(t, ".zst", CompressionZSTD.Extension())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, CompressionXZ, DetectCompression("OUT.SQL.XZ"))
}
