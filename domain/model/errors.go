package model

import "errors"

var (
	// ErrDuplicateColumnName is returned when a file contains duplicate column names
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrUnknownType is returned for an unrecognized column type token
	ErrUnknownType = errors.New("unknown column type")
)
