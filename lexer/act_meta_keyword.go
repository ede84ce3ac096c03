package lexer

import (
	"github.com/chorpler/boxes/token"
)

// actMetaKeyword emits a design metadata keyword like "author" with its raw text.
func actMetaKeyword(ac *actionContext) (tok token.Token, stride int, v verdict) {
	return ac.token(token.KindKeyword, token.NewText(string(ac.text()))), ac.Width, accept
}
