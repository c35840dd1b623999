package tsvsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
	"github.com/stretchr/testify/assert"
)

func TestErrorContext(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	err := NewErrorContext("parse", "users.tsv").WithTable("users").WithDetails("line 3").Error(base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "tsvsql: parse failed, file: users.tsv, table: users, details: line 3: boom", err.Error())
	assert.EqualError(t, NewErrorContext("load", "").Error(nil), "tsvsql: load failed")
}

func TestErrorContext_Translate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   error
		want error
	}{
		{in: textfile.ErrNotRegularFile, want: ErrFileNotFound},
		{in: textfile.ErrInvalidEncoding, want: ErrLineDecode},
		{in: textfile.ErrFileChanged, want: ErrFileChanged},
		{in: textfile.ErrUnknownEncoding, want: ErrUnsupportedFormat},
		{in: model.ErrDuplicateColumnName, want: ErrDuplicateColumnName},
		{in: model.ErrUnknownType, want: ErrUnknownColumnType},
	}

	for _, tt := range tests {
		err := NewErrorContext("parse", "x.tsv").Error(fmt.Errorf("wrapped: %w", tt.in))
		assert.ErrorIs(t, err, tt.want)
		assert.ErrorIs(t, err, tt.in)
	}
}
