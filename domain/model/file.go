package model

import (
	"path/filepath"
	"strings"
)

// Format is the container of the rows
type Format int

const (
	// FormatText is tab separated text
	FormatText Format = iota
	// FormatXLSX is an Excel workbook; the first sheet is read
	FormatXLSX
	// FormatParquet is an Apache Parquet file
	FormatParquet
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatXLSX:
		return "xlsx"
	case FormatParquet:
		return "parquet"
	default:
		return "text"
	}
}

// File extensions
const (
	// ExtTSV is the TSV file extension
	ExtTSV = ".tsv"
	// ExtXLSX is the Excel file extension
	ExtXLSX = ".xlsx"
	// ExtParquet is the Parquet file extension
	ExtParquet = ".parquet"
	// ExtGZ is the gzip compression extension
	ExtGZ = ".gz"
	// ExtBZ2 is the bzip2 compression extension
	ExtBZ2 = ".bz2"
	// ExtXZ is the xz compression extension
	ExtXZ = ".xz"
	// ExtZSTD is the zstd compression extension
	ExtZSTD = ".zst"
)

// CompressionType represents the compression type
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the string representation of CompressionType
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGZ:
		return "gz"
	case CompressionBZ2:
		return "bz2"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGZ:
		return ExtGZ
	case CompressionBZ2:
		return ExtBZ2
	case CompressionXZ:
		return ExtXZ
	case CompressionZSTD:
		return ExtZSTD
	default:
		return ""
	}
}

// compressionExts lists the compressed variants checked against a path
var compressionExts = []CompressionType{CompressionGZ, CompressionBZ2, CompressionXZ, CompressionZSTD}

// DetectCompression returns the compression implied by the path extension
func DetectCompression(path string) CompressionType {
	lower := strings.ToLower(path)
	for _, c := range compressionExts {
		if strings.HasSuffix(lower, c.Extension()) {
			return c
		}
	}
	return CompressionNone
}

// File describes an input path: its container format and compression.
type File struct {
	path        string
	format      Format
	compression CompressionType
}

// NewFile creates a new File
func NewFile(path string) *File {
	compression := DetectCompression(path)
	format := FormatText
	switch ext := filepath.Ext(trimCompression(path, compression)); {
	case strings.EqualFold(ext, ExtXLSX):
		format = FormatXLSX
	case strings.EqualFold(ext, ExtParquet):
		format = FormatParquet
	}
	return &File{
		path:        path,
		format:      format,
		compression: compression,
	}
}

// Path returns file path
func (f *File) Path() string {
	return f.path
}

// Format returns the container format
func (f *File) Format() Format {
	return f.format
}

// Compression returns the compression type
func (f *File) Compression() CompressionType {
	return f.compression
}

// IsCompressed returns true if file is compressed
func (f *File) IsCompressed() bool {
	return f.compression != CompressionNone
}

// TableName derives a table name from the file name: compression and
// format extensions are removed.
func (f *File) TableName() string {
	fileName := trimCompression(filepath.Base(f.path), f.compression)
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

func trimCompression(path string, c CompressionType) string {
	if c == CompressionNone {
		return path
	}
	return path[:len(path)-len(c.Extension())]
}
