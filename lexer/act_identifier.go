package lexer

import (
	"github.com/chorpler/boxes/token"
)

func actASCIIID(ac *actionContext) (tok token.Token, stride int, v verdict) {
	return ac.token(token.KindASCIIID, token.NewText(string(ac.text()))), ac.Width, accept
}

// actWord emits a word which may contain multi-byte letters, decoded from the source encoding.
func actWord(ac *actionContext) (tok token.Token, stride int, v verdict) {
	return ac.token(token.KindWord, token.NewText(ac.s.decode(ac.text()))), ac.Width, accept
}
