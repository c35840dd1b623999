package tsvsql

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
	"github.com/xuri/excelize/v2"
)

// sourceOptions selects how a file is turned into a line store
type sourceOptions struct {
	mode       LoadMode
	newline    textfile.Newline
	encoding   string
	cacheLines int
	logger     *slog.Logger
}

func (o sourceOptions) storeOptions() []textfile.Option {
	return []textfile.Option{
		textfile.WithNewline(o.newline),
		textfile.WithEncoding(o.encoding),
		textfile.WithCacheCapacity(o.cacheLines),
	}
}

// openStore opens f as a line store. Compressed files and workbooks are
// decoded into memory; plain files follow the load mode.
func openStore(f *model.File, opts sourceOptions) (textfile.Store, error) {
	if f.Format() == model.FormatXLSX {
		data, err := readXLSX(f)
		if err != nil {
			return nil, err
		}
		opts.logger.Debug("opened workbook", "path", f.Path(), "bytes", len(data))
		return textfile.FromBytes(data, textfile.WithNewline(textfile.Unix))
	}

	if f.Format() == model.FormatParquet {
		data, err := readParquet(f)
		if err != nil {
			return nil, err
		}
		opts.logger.Debug("opened parquet", "path", f.Path(), "bytes", len(data))
		return textfile.FromBytes(data, textfile.WithNewline(textfile.Unix))
	}

	if f.IsCompressed() {
		data, err := readDecompressed(f.Path())
		if err != nil {
			return nil, err
		}
		opts.logger.Debug("decompressed input", "path", f.Path(), "compression", f.Compression().String(), "bytes", len(data))
		return textfile.FromBytes(data, opts.storeOptions()...)
	}

	mode := opts.mode
	if mode == LoadModeAuto {
		mode = LoadModeMemory
		if info, err := os.Stat(f.Path()); err == nil && info.Size() >= lazyThreshold {
			mode = LoadModeLazy
		}
	}
	opts.logger.Debug("opening line store", "path", f.Path(), "mode", mode.String())

	if mode == LoadModeLazy {
		return textfile.Open(f.Path(), opts.storeOptions()...)
	}
	return textfile.ReadFile(f.Path(), opts.storeOptions()...)
}

// cellReplacer keeps every workbook or parquet cell on one line and
// inside one column
var cellReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// readXLSX renders the first sheet of a workbook as tab separated text.
// Short rows are padded to the widest row so every line has the same
// number of cells.
func readXLSX(f *model.File) ([]byte, error) {
	var (
		book *excelize.File
		err  error
	)
	if f.IsCompressed() {
		data, readErr := readDecompressed(f.Path())
		if readErr != nil {
			return nil, readErr
		}
		book, err = excelize.OpenReader(bytes.NewReader(data))
	} else {
		book, err = excelize.OpenFile(f.Path())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, f.Path(), err)
	}
	defer func() {
		_ = book.Close() // Ignore close error
	}()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets found in Excel file: %s", ErrEmptyOrInvalidHeader, f.Path())
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var buf bytes.Buffer
	cells := make([]string, width)
	for _, row := range rows {
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = cellReplacer.Replace(row[i])
			}
		}
		buf.WriteString(strings.Join(cells, cellSeparator))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
