package lexer

import (
	"bytes"

	"github.com/chorpler/boxes/token"
)

// actString scans a string opened by the current delimiter. The rule matches the whole rest of the line,
// so the action rejects anything that does not start with the delimiter.
//
// Behaviour:
//
// The escape character is dropped and the character after it is copied verbatim, which is how the
// delimiter or the escape character itself get into a string. The first unescaped delimiter closes
// the string and everything after it is handed back to the scanner.
//
// Strings never span lines. If the line ends before the closing delimiter, or with a lone escape character,
// the whole line is consumed, an unterminated string is reported and a [token.KindUnrecognized] is returned.
func actString(ac *actionContext) (tok token.Token, stride int, v verdict) {
	s := ac.s
	in := ac.Input
	end := ac.Idx + ac.Width

	// 1. Checking the opening delimiter.
	c, w := nextChar(in, ac.Idx)
	if c != s.delims.delim {
		return tok, 0, reject
	}

	// 2. Collecting the string contents, unescaping on the way.
	buf := make([]byte, 0, ac.Width)

	for i := ac.Idx + w; i < end; {
		c, w := nextChar(in, i)

		if c == s.delims.escape {
			// nothing left to escape, the string can't be closed on this line
			if i+w >= end {
				break
			}

			_, nextWidth := nextChar(in, i+w)
			buf = append(buf, in[i+w:i+w+nextWidth]...)
			i += w + nextWidth
			continue
		}

		// 3. Happy case: the closing delimiter.
		if c == s.delims.delim {
			stride = i + w - ac.Idx
			return ac.token(token.KindString, token.NewText(s.decode(buf))), stride, accept
		}

		buf = append(buf, in[i:i+w]...)
		i += w
	}

	// 4. Unterminated string: the rest of the line is skipped.
	text := string(bytes.TrimRight(ac.text(), "\r"))
	tok = ac.fail(IssueUnterminatedString, text, "unterminated string -- "+text)
	return tok, ac.Width, accept
}
