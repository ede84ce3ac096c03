package lexer

import (
	"github.com/chorpler/boxes/shape"
	"github.com/chorpler/boxes/token"
)

func actShape(ac *actionContext) (tok token.Token, stride int, v verdict) {
	s, ok := shape.Parse(string(ac.text()))
	if !ok {
		return tok, 0, reject
	}
	return ac.token(token.KindShape, token.NewShape(s)), ac.Width, accept
}
