package tsvsql

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/nao1215/tsvsql/domain/model"
	"github.com/ulikunitz/xz"
)

// nopCloser is the cleanup for codecs that hold no resources
func nopCloser() error { return nil }

// decompressReader wraps reader with a decompression reader for c. The
// returned cleanup releases codec resources but not reader itself.
func decompressReader(c model.CompressionType, reader io.Reader) (io.Reader, func() error, error) {
	switch c {
	case model.CompressionNone:
		return reader, nopCloser, nil

	case model.CompressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case model.CompressionBZ2:
		return bzip2.NewReader(reader), nopCloser, nil

	case model.CompressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, nopCloser, nil

	case model.CompressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("%w: compression %v", ErrUnsupportedFormat, c)
	}
}

// compressWriter wraps writer with a compression writer for c. The returned
// cleanup flushes the codec but does not close writer.
func compressWriter(c model.CompressionType, writer io.Writer) (io.Writer, func() error, error) {
	switch c {
	case model.CompressionNone:
		return writer, nopCloser, nil

	case model.CompressionGZ:
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, gzWriter.Close, nil

	case model.CompressionBZ2:
		return nil, nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, errors.New("bzip2 compression is not supported for writing"))

	case model.CompressionXZ:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil

	case model.CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: compression %v", ErrUnsupportedFormat, c)
	}
}

// readDecompressed reads the whole file at path, decompressing it according
// to its extension
func readDecompressed(path string) ([]byte, error) {
	file, err := os.Open(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close() // Ignore close error on read-only file
	}()

	reader, cleanup, err := decompressReader(model.DetectCompression(path), file)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cleanup() // Ignore codec cleanup error after a full read
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return data, nil
}

// writeCompressed creates path and writes data through the codec implied by
// its extension
func writeCompressed(path string, data []byte) (err error) {
	c := model.DetectCompression(path)
	if c == model.CompressionBZ2 {
		_, _, err := compressWriter(c, io.Discard)
		return err
	}

	file, err := os.Create(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	writer, cleanup, err := compressWriter(c, file)
	if err != nil {
		return err
	}
	if _, err := writer.Write(data); err != nil {
		_ = cleanup() // Ignore cleanup error; the write error is reported
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := cleanup(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Sync()
}
