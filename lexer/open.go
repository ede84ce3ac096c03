package lexer

import (
	"fmt"
	"io"
	"os"
)

// DefaultBufferMargin is the number of spare bytes allocated beyond the file size.
const DefaultBufferMargin = 2

// ByteToTokenRatio is the estimated number of input bytes per token.
// It is used to estimate the initial capacity of token slices.
const ByteToTokenRatio = 4

// Open reads the whole configuration file at path and returns a session scanning it.
//
// The buffer is sized from the file's metadata before reading, as the scanner needs the complete
// file in memory. Failing to stat or to read the file yields a [*FatalError]; invalid options
// yield a [*ConfigError].
func Open(path string, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &FatalError{Op: "stat", Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FatalError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	size := info.Size()
	buf := make([]byte, size+int64(opts.BufferMargin))

	n, err := io.ReadFull(f, buf[:size])
	if err != nil {
		return nil, &FatalError{Op: "read", Path: path, Err: err}
	}

	// the margin stays in the capacity only, the scanner bounds every read by the length
	return NewSession(path, buf[:n], opts)
}

func negativeLimitError(name string, value int) error {
	return fmt.Errorf("%s must be >= 0, got %d", name, value)
}
