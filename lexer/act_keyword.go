package lexer

import (
	"bytes"

	"github.com/chorpler/boxes/token"
)

// keywordKinds maps the lower case keywords to their token kinds.
var keywordKinds = map[string]token.Kind{
	"parent":    token.KindParent,
	"box":       token.KindBox,
	"end":       token.KindEnd,
	"sample":    token.KindSample,
	"elastic":   token.KindElastic,
	"shapes":    token.KindShapes,
	"delimiter": token.KindChangeDelim,
	"delim":     token.KindChangeDelim,
	"replace":   token.KindReplace,
	"reverse":   token.KindReverse,
	"padding":   token.KindPadding,
	"to":        token.KindTo,
	"with":      token.KindWith,
	"tags":      token.KindTags,
}

func keywordKind(ac *actionContext) token.Kind {
	return keywordKinds[string(bytes.ToLower(ac.text()))]
}

func actSkip(ac *actionContext) (tok token.Token, stride int, v verdict) {
	return tok, ac.Width, skip
}

// actKeyword emits the plain keyword token without any state change.
func actKeyword(ac *actionContext) (tok token.Token, stride int, v verdict) {
	return ac.token(keywordKind(ac), token.Payload{}), ac.Width, accept
}

// actEnter returns an action which emits the keyword and switches to st.
func actEnter(st State) action {
	return func(ac *actionContext) (tok token.Token, stride int, v verdict) {
		ac.s.begin(st)
		return ac.token(keywordKind(ac), token.Payload{}), ac.Width, accept
	}
}
