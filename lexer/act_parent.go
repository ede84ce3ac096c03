package lexer

import (
	"bytes"

	"github.com/chorpler/boxes/token"
)

func actParent(ac *actionContext) (tok token.Token, stride int, v verdict) {
	ac.s.begin(InParent)
	return ac.token(token.KindParent, token.Payload{}), ac.Width, accept
}

// actFilename emits the trimmed rest of the 'parent' line. Blank lines are left to the other rules.
func actFilename(ac *actionContext) (tok token.Token, stride int, v verdict) {
	name := bytes.Trim(ac.text(), " \t\r")
	if len(name) == 0 {
		return tok, 0, reject
	}

	ac.s.begin(Default)
	return ac.token(token.KindFilename, token.NewText(ac.s.decode(name))), ac.Width, accept
}

// actParentNewline ends a 'parent' statement which has no file name.
func actParentNewline(ac *actionContext) (tok token.Token, stride int, v verdict) {
	ac.s.begin(Default)
	return tok, ac.Width, skip
}
