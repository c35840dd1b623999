package tsvsql

// WriteSQLFile writes text to path. The compression is chosen from the
// path extension: .gz, .xz and .zst are compressed, bzip2 is rejected and
// anything else is written as is.
func WriteSQLFile(path, text string) error {
	if err := writeCompressed(path, []byte(text)); err != nil {
		return NewErrorContext("write sql", path).Error(err)
	}
	return nil
}
