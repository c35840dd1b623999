// Package textfile provides line-oriented access to text files.
//
// A file is scanned once to find the byte offset of every line terminator.
// Lines are then served by index, either from memory (MemoryFile) or by
// re-reading the file on demand through a bounded cache (LazyFile).
//
// Three newline conventions are supported:
//   - Unix: a line ends at LF (10)
//   - ClassicMac: a line ends at CR (13)
//   - Windows: a line ends at the pair CR LF (13, 10); a lone CR is data
//
// If the last byte of the file is not a terminator, the trailing partial line
// is still returned. An empty file has zero lines.
package textfile
