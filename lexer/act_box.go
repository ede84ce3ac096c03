package lexer

import (
	"github.com/chorpler/boxes/token"
)

// actBox starts a new box design: default delimiters, a fresh diagnostic budget.
func actBox(ac *actionContext) (tok token.Token, stride int, v verdict) {
	ac.s.resetDelimiters()
	ac.s.diags.reset()
	ac.s.begin(InBox)
	return ac.token(token.KindBox, token.Payload{}), ac.Width, accept
}

func actEnd(ac *actionContext) (tok token.Token, stride int, v verdict) {
	ac.s.resetDelimiters()
	ac.s.begin(Default)
	return ac.token(token.KindEnd, token.Payload{}), ac.Width, accept
}
