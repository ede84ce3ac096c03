// Package lexer turns boxes configuration files into a stream of tokens.
//
// The scanner is pull-based: the parser calls [Session.Next] and gets exactly one token per call.
// Every configuration file is read through its own [Session], which holds the exclusive lexical
// state, the string delimiters in effect and the diagnostic counter.
//
// Lexical problems never stop the scan. They are reported through the session's [Reporter] and
// replaced by a [token.KindUnrecognized] token, leaving the recovery to the grammar.
package lexer

import (
	"github.com/chorpler/boxes/token"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
)

// TokenSource is what the parser consumes.
type TokenSource interface {
	Next() token.Token
}

// Options configure a [Session].
type Options struct {
	// Encoding is the IANA name of the source text encoding. Empty means [DefaultEncoding].
	Encoding string

	// MaxDiagnostics is the number of diagnostics of each kind reported per box design.
	// The rest is suppressed. Zero suppresses all diagnostics.
	MaxDiagnostics int

	// BufferMargin is the number of spare bytes allocated beyond the file size by [Open].
	BufferMargin int

	// Reporter receives the diagnostics. When nil, they are logged through Logger.
	Reporter Reporter

	// Logger is the parent logger of the session. When nil, the global zerolog logger is used.
	Logger *zerolog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Encoding:       DefaultEncoding,
		MaxDiagnostics: DefaultMaxDiagnostics,
		BufferMargin:   DefaultBufferMargin,
	}
}

// Validate checks if the limits are not negative.
// Returns [ConfigError] if at least one of the values is negative.
func (o Options) Validate() error {
	values := [2]int{
		o.MaxDiagnostics,
		o.BufferMargin,
	}

	names := [2]string{
		"MaxDiagnostics",
		"BufferMargin",
	}

	for i := range values {
		if values[i] < 0 {
			return NewConfigError(IssueNegativeLimit, negativeLimitError(names[i], values[i]))
		}
	}

	return nil
}

// Session is the scan state of one configuration file.
// It is not safe for concurrent use; every file gets its own Session.
type Session struct {
	// ID identifies the session in log output.
	ID string

	// Name is the file name or another label of the input.
	Name string

	input []byte

	// pos is the index of the next unscanned byte.
	pos int

	// line is the 1-based line number of the byte at pos.
	line int

	state  State
	delims delimiters
	diags  diagnostics

	decoder *encoding.Decoder
	logger  zerolog.Logger
}

// NewSession creates a scanner over the input, which must contain the whole configuration file.
func NewSession(name string, input []byte, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	parent := log.Logger
	if opts.Logger != nil {
		parent = *opts.Logger
	}

	id := uuid.NewString()
	logger := parent.With().Str("session", id).Str("file", name).Logger()

	reporter := opts.Reporter
	if reporter == nil {
		reporter = NewLogReporter(logger)
	}

	return &Session{
		ID:      id,
		Name:    name,
		input:   input,
		line:    1,
		state:   Default,
		delims:  defaultDelimiters(),
		diags:   diagnostics{reporter: reporter, max: opts.MaxDiagnostics},
		decoder: enc.NewDecoder(),
		logger:  logger,
	}, nil
}

// State returns the active lexical state.
func (s *Session) State() State {
	return s.state
}

// Line returns the line number of the next unscanned byte.
func (s *Session) Line() int {
	return s.line
}

// Suppressed returns the number of diagnostics that were not reported because of the limit.
func (s *Session) Suppressed() int {
	return s.diags.dropped
}

// Next scans and returns the next token. After the input is exhausted it keeps returning
// a [token.KindEOF] token.
func (s *Session) Next() token.Token {
	for s.pos < len(s.input) {
		tok, ok := s.scan()
		if ok {
			return tok
		}
	}

	return token.Token{Kind: token.KindEOF, Line: s.line, Pos: s.pos}
}

// All drains the session and returns every token up to and including EOF.
func (s *Session) All() []token.Token {
	// guessing the token count to minimize the number of the slice resizes
	tokens := make([]token.Token, 0, len(s.input)/ByteToTokenRatio+1)

	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.KindEOF {
			return tokens
		}
	}
}

// scan runs the rules of the active state at the current position. It returns false if the
// matched input produced no token, like whitespace or a comment.
//
// The rule with the longest match wins, ties go to the rule listed first. The winning rule may reject
// the match after looking at it, in which case the selection is repeated among the remaining rules.
// Nothing is consumed until a rule accepts.
func (s *Session) scan() (tok token.Token, ok bool) {
	rules := stateRules[s.state]

	var widths [maxRulesPerState]int
	for k := range rules {
		widths[k] = rules[k].match(s.input, s.pos)
	}

	// rejected is a bit set of rules that declined the current position
	var rejected uint64

	for {
		best, bestWidth := -1, 0

		for k := range rules {
			if rejected&(1<<k) == 0 && widths[k] > bestWidth {
				best, bestWidth = k, widths[k]
			}
		}

		// every table ends with a catch-all rule, so this means the catch-all has rejected too
		if best == -1 {
			ac := actionContext{s: s, Input: s.input, Idx: s.pos}
			_, ac.Width = nextChar(s.input, s.pos)
			tok, stride, _ := actUnrecognized(&ac)
			s.advance(stride)
			return tok, true
		}

		ac := actionContext{s: s, Input: s.input, Idx: s.pos, Width: bestWidth}
		tok, stride, v := rules[best].act(&ac)

		if v == reject {
			rejected |= 1 << best
			continue
		}

		s.logger.Trace().Str("rule", rules[best].name).Int("line", s.line).Int("stride", stride).Msg("match")

		s.advance(stride)
		return tok, v == accept
	}
}

// advance moves the cursor over n bytes, counting lines on the way.
func (s *Session) advance(n int) {
	end := min(s.pos+n, len(s.input))

	for i := s.pos; i < end; i++ {
		if s.input[i] == '\n' {
			s.line++
		}
	}

	s.pos = end
}

// begin switches the active state.
func (s *Session) begin(st State) {
	s.state = st
}

// report fills in the position of d and passes it to the rate limiter.
func (s *Session) report(d Diagnostic) {
	if d.Line == 0 {
		d.Line = s.line
	}

	if !s.diags.add(d) {
		s.logger.Debug().Str("issue", d.Issue.String()).Int("line", d.Line).Msg("diagnostic suppressed")
	}
}
