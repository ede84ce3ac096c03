package lexer

// Issue defines types of problems we might encounter while scanning a configuration file
// or while setting up the scanner.
type Issue int

const (
	// IssueUnterminatedString occurs when a string is opened with the current delimiter, but no
	// unescaped closing delimiter is found before the end of the line.
	IssueUnterminatedString Issue = iota

	// IssueEmptySample occurs when the sample block contains nothing but blank lines.
	IssueEmptySample

	// IssueUnterminatedSample occurs when the input ends inside a sample block.
	IssueUnterminatedSample

	// IssueInvalidDelimSpec occurs when the text after the 'delimiter' keyword is not a valid
	// escape/delimiter pair.
	IssueInvalidDelimSpec

	// IssueUnrecognizedChar occurs when no rule of the current state matches the next character.
	IssueUnrecognizedChar

	// IssueNumberRange occurs when a number literal does not fit into an int.
	IssueNumberRange

	// IssueUnknownEncoding occurs during setup when the declared source encoding is not supported.
	IssueUnknownEncoding

	// IssueNegativeLimit occurs during setup when any value in [Options] is negative.
	IssueNegativeLimit

	NumIssues
)

var issueNames = [NumIssues]string{
	IssueUnterminatedString: "Unterminated String",
	IssueEmptySample:        "Empty Sample",
	IssueUnterminatedSample: "Unterminated Sample",
	IssueInvalidDelimSpec:   "Invalid Delimiter Specification",
	IssueUnrecognizedChar:   "Unrecognized Character",
	IssueNumberRange:        "Number Out Of Range",
	IssueUnknownEncoding:    "Unknown Encoding",
	IssueNegativeLimit:      "Negative Limit",
}

func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Unknown Issue"
	}
	return issueNames[i]
}
