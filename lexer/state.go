package lexer

// State is the exclusive lexical state of a [Session]. Exactly one state is active at a time and it
// decides which rules are tried at the current position.
type State int

const (
	// Default is the top level of the file, outside of any box design.
	Default State = iota

	// InBox is the body of a box design, between 'box' and 'end'.
	InBox

	// InSample is the verbatim sample block, between 'sample' and 'ends'.
	InSample

	// InShapes is the shapes block, between 'shapes' and the closing '}'.
	InShapes

	// InElastic is the elastic shape list, between 'elastic' and the closing ')'.
	InElastic

	// InDelimiterSpec expects the delimiter specification after the 'delimiter' keyword.
	InDelimiterSpec

	// InParent expects the file name after the 'parent' keyword.
	InParent

	numStates
)

var stateNames = [numStates]string{
	Default:         "Default",
	InBox:           "InBox",
	InSample:        "InSample",
	InShapes:        "InShapes",
	InElastic:       "InElastic",
	InDelimiterSpec: "InDelimiterSpec",
	InParent:        "InParent",
}

func (st State) String() string {
	if st < 0 || st >= numStates {
		return "Invalid"
	}
	return stateNames[st]
}
