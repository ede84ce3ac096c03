package lexer

import (
	"fmt"
	"strconv"

	"github.com/chorpler/boxes/token"
)

func actNumber(ac *actionContext) (tok token.Token, stride int, v verdict) {
	raw := string(ac.text())

	n, err := strconv.Atoi(raw)
	if err != nil {
		tok = ac.fail(IssueNumberRange, raw, fmt.Sprintf("number out of range: %s", raw))
		return tok, ac.Width, accept
	}

	return ac.token(token.KindNumber, token.NewInt(n)), ac.Width, accept
}
