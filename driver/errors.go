package driver

import "errors"

// Predefined errors
var (
	// ErrNoPathProvided is returned when the DSN is empty
	ErrNoPathProvided = errors.New("tsvsql driver: no path provided")

	// ErrExecContextNotSupported is returned when the underlying connection cannot execute statements
	ErrExecContextNotSupported = errors.New("tsvsql driver: underlying connection does not support ExecContext")

	// ErrBeginTxNotSupported is returned when underlying connection does not support BeginTx
	ErrBeginTxNotSupported = errors.New("tsvsql driver: underlying connection does not support BeginTx")

	// ErrPrepareContextNotSupported is returned when underlying connection does not support PrepareContext
	ErrPrepareContextNotSupported = errors.New("tsvsql driver: underlying connection does not support PrepareContext")
)
