package lexer

import (
	"bytes"

	"github.com/chorpler/boxes/token"
)

// actRegexFlag emits 'g' for "global" and 'o' for "once".
func actRegexFlag(ac *actionContext) (tok token.Token, stride int, v verdict) {
	flag := rune(bytes.ToLower(ac.text()[:1])[0])
	return ac.token(token.KindRegexFlag, token.NewChar(flag)), ac.Width, accept
}
