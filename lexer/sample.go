package lexer

import (
	"bytes"
	"strings"

	"github.com/chorpler/boxes/token"
)

// sampleTerminator is the keyword ending a sample block. It must be alone on its line.
const sampleTerminator = "ends"

// lineStart returns the index of the first byte of the line containing in[i].
func lineStart(in []byte, i int) int {
	return bytes.LastIndexByte(in[:i], '\n') + 1
}

// terminatorLine checks if the line starting at ls consists of optional blanks, the terminator keyword,
// and optional blanks or carriage returns. It returns the index of the keyword and the index of the line end,
// which is the newline or the end of the input.
func terminatorLine(in []byte, ls int) (keywordIdx, lineEnd int, ok bool) {
	i := ls
	for i < len(in) && (in[i] == ' ' || in[i] == '\t') {
		i++
	}

	if !hasPrefixFold(in[i:], sampleTerminator) {
		return 0, 0, false
	}

	keywordIdx = i
	i += len(sampleTerminator)

	for i < len(in) && isBlank(in[i]) {
		i++
	}

	if i < len(in) && in[i] != '\n' {
		return 0, 0, false
	}

	return keywordIdx, i, true
}

// matchEndSample matches the terminator keyword along with trailing blanks, but only where the keyword is
// the first non-blank thing on a terminator line.
func matchEndSample(in []byte, i int) int {
	keywordIdx, lineEnd, ok := terminatorLine(in, lineStart(in, i))
	if !ok || keywordIdx != i {
		return 0
	}
	return lineEnd - i
}

// matchSampleBlock matches everything up to the end of the first terminator line,
// or up to the end of the input if there is none.
func matchSampleBlock(in []byte, i int) int {
	ls := lineStart(in, i)

	for ls < len(in) {
		if keywordIdx, lineEnd, ok := terminatorLine(in, ls); ok && keywordIdx >= i {
			return lineEnd - i
		}

		nl := bytes.IndexByte(in[ls:], '\n')
		if nl == -1 {
			break
		}
		ls += nl + 1
	}

	return len(in) - i
}

// actSampleBlock extracts the sample text.
//
// The match runs through the terminator line, which must not become part of the sample. The stride is
// cut back to the terminator keyword, so that [actEndSample] emits it on the next scan. The sample
// consists of the lines before the terminator line, with a blank remainder of the 'sample' line and
// trailing blank lines removed. It always ends with a single newline.
func actSampleBlock(ac *actionContext) (tok token.Token, stride int, v verdict) {
	in := ac.Input
	end := ac.Idx + ac.Width

	// 1. Finding the true content boundary.
	keywordIdx, _, ok := terminatorLine(in, lineStart(in, end))

	if !ok || keywordIdx < ac.Idx {
		// the input ended inside the sample, everything is consumed
		tok = ac.fail(IssueUnterminatedSample, "", "unterminated sample block -- missing '"+sampleTerminator+"'")
		return tok, ac.Width, accept
	}

	// the terminator is right here, leave it to the narrower rule
	if keywordIdx == ac.Idx {
		return tok, 0, reject
	}

	stride = keywordIdx - ac.Idx

	// 2. Cutting off the indentation of the terminator line.
	content := bytes.TrimRight(in[ac.Idx:keywordIdx], " \t")

	// 3. Dropping the rest of the 'sample' line if there's nothing on it.
	if nl := bytes.IndexByte(content, '\n'); nl >= 0 && len(bytes.Trim(content[:nl], " \t\r")) == 0 {
		content = content[nl+1:]
	}

	text := trimTrailingBlankLines(ac.s.decode(content) + "\n")

	if text == "" {
		tok = ac.fail(IssueEmptySample, "", "sample block must not be empty")
		return tok, stride, accept
	}

	return ac.token(token.KindString, token.NewText(text)), stride, accept
}

// actEndSample emits the sample terminator and returns to the box body.
func actEndSample(ac *actionContext) (tok token.Token, stride int, v verdict) {
	ac.s.begin(InBox)
	return ac.token(token.KindEndSample, token.Payload{}), ac.Width, accept
}

// trimTrailingBlankLines removes the lines at the end of text, which contain only white space.
// The text is expected to end with a newline; what remains does too, unless it's empty.
func trimTrailingBlankLines(text string) string {
	for text != "" {
		body := strings.TrimSuffix(text, "\n")
		last := body[strings.LastIndexByte(body, '\n')+1:]

		if strings.TrimSpace(last) != "" {
			break
		}

		text = body[:len(body)-len(last)]
	}

	return text
}
