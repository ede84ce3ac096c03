package lexer

import (
	"github.com/rs/zerolog"
)

// DefaultMaxDiagnostics is the number of diagnostics of one kind reported per box design before
// further diagnostics of that kind are suppressed.
const DefaultMaxDiagnostics = 3

// Diagnostic describes a recoverable problem found in the configuration file.
type Diagnostic struct {
	// Issue defines the type of the problem.
	Issue Issue

	// Line is the 1-based line number at which the problem occurred.
	Line int

	// Pos defines the byte position in the input at which the problem occurred.
	Pos int

	// Text is the offending input, as far as it could be scanned.
	Text string

	// Description is a human-readable story of what went wrong.
	Description string
}

// Reporter receives the diagnostics which pass the rate limit of a session.
// It is the side channel of the scanner; diagnostics never appear in the token stream.
type Reporter interface {
	Report(d Diagnostic)
}

// LogReporter writes diagnostics as warnings to a zerolog logger.
type LogReporter struct {
	logger zerolog.Logger
}

func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(d Diagnostic) {
	r.logger.Warn().
		Str("issue", d.Issue.String()).
		Int("line", d.Line).
		Int("pos", d.Pos).
		Str("near", d.Text).
		Msg(d.Description)
}

// diagnostics counts the problems of the current box design per issue kind and forwards them to the
// Reporter until the limit of that kind is reached. Everything after that is only counted.
type diagnostics struct {
	reporter Reporter

	// max defines how many diagnostics of one kind are forwarded before suppression kicks in.
	// It keeps a pathological file from flooding the output.
	max int

	// count holds the number of diagnostics of each kind recorded since the last reset, forwarded or not.
	count [NumIssues]int

	// dropped is the number of suppressed diagnostics over the whole session.
	dropped int
}

// add forwards d to the reporter unless the limit for its issue is reached.
// It returns true if d was reported.
func (ds *diagnostics) add(d Diagnostic) bool {
	if d.Issue >= 0 && d.Issue < NumIssues {
		ds.count[d.Issue]++

		if ds.count[d.Issue] > ds.max {
			ds.dropped++
			return false
		}
	}

	if ds.reporter != nil {
		ds.reporter.Report(d)
	}
	return true
}

// reset clears the per-design counters. Suppressed diagnostics stay counted in dropped.
func (ds *diagnostics) reset() {
	ds.count = [NumIssues]int{}
}
