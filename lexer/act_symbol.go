package lexer

import (
	"github.com/chorpler/boxes/token"
)

// actSymbol emits the punctuation character. A closing ')' ends the elastic list and
// a closing '}' ends the shapes block.
func actSymbol(ac *actionContext) (tok token.Token, stride int, v verdict) {
	c := ac.Input[ac.Idx]

	switch {
	case c == ')' && ac.s.state == InElastic:
		ac.s.begin(InBox)
	case c == '}' && ac.s.state == InShapes:
		ac.s.begin(InBox)
	}

	return ac.token(token.KindSymbol, token.NewChar(rune(c))), ac.Width, accept
}
