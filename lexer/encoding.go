package lexer

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is assumed when no source encoding is declared.
const DefaultEncoding = "UTF-8"

// lookupEncoding resolves an IANA character set name, e.g. "ISO-8859-15" or "windows-1252".
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, NewConfigError(IssueUnknownEncoding, fmt.Errorf("unknown source encoding %q: %w", name, err))
	}

	// the index knows some names it has no implementation for
	if enc == nil {
		return nil, NewConfigError(IssueUnknownEncoding, fmt.Errorf("source encoding %q is not supported", name))
	}

	return enc, nil
}

// decode converts raw input bytes from the source encoding to a Go string.
func (s *Session) decode(raw []byte) string {
	out, err := s.decoder.Bytes(raw)
	if err != nil {
		// charmap and UTF-8 decoders replace bad input instead of failing, so this is unlikely
		s.logger.Debug().Err(err).Int("line", s.line).Msg("cannot decode text, using raw bytes")
		return string(raw)
	}

	return string(out)
}
