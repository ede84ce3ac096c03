package lexer

import (
	"fmt"

	"github.com/chorpler/boxes/token"
)

// actUnrecognized is the catch-all: one character no other rule wants.
func actUnrecognized(ac *actionContext) (tok token.Token, stride int, v verdict) {
	text := string(ac.text())
	tok = ac.fail(IssueUnrecognizedChar, text, fmt.Sprintf("unrecognized input char %q", text))
	return tok, ac.Width, accept
}
