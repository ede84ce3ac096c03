package lexer

// rule pairs a pattern with the action run on its match.
type rule struct {
	name  string
	match matcher
	act   action
}

// maxRulesPerState bounds the rule tables, so rejected rules fit into a bit set.
const maxRulesPerState = 64

var metaKeywords = []string{"author", "designer", "created", "revision", "revdate", "indent"}

var shapeNames = []string{
	"nw", "nnw", "n", "nne", "ne", "ene", "e", "ese",
	"se", "sse", "s", "ssw", "sw", "wsw", "w", "wnw",
}

var (
	ruleSpace   = rule{"space", matchSpace, actSkip}
	ruleBOM     = rule{"bom", matchExact(bom), actSkip}
	ruleComment = rule{"comment", matchComment, actSkip}
	ruleString  = rule{"string", matchRestOfLine, actString}

	ruleParent  = rule{"parent", matchWords("parent"), actParent}
	ruleBox     = rule{"box", matchWords("box"), actBox}
	ruleEnd     = rule{"end", matchWords("end"), actEnd}
	ruleSample  = rule{"sample", matchWords("sample"), actEnter(InSample)}
	ruleElastic = rule{"elastic", matchWords("elastic"), actEnter(InElastic)}
	ruleShapes  = rule{"shapes", matchWords("shapes"), actEnter(InShapes)}
	ruleDelim   = rule{"delimiter", matchWords("delimiter", "delim"), actEnter(InDelimiterSpec)}
	ruleReplace = rule{"replace", matchWords("replace"), actKeyword}
	ruleReverse = rule{"reverse", matchWords("reverse"), actKeyword}
	rulePadding = rule{"padding", matchWords("padding"), actKeyword}
	ruleTo      = rule{"to", matchWords("to"), actKeyword}
	ruleWith    = rule{"with", matchWords("with"), actKeyword}
	ruleTags    = rule{"tags", matchWords("tags"), actKeyword}
	ruleRxpFlag = rule{"regexflag", matchWords("global", "once"), actRegexFlag}
	ruleMeta    = rule{"metadata", matchWords(metaKeywords...), actMetaKeyword}
	ruleShape   = rule{"shape", matchWords(shapeNames...), actShape}

	ruleASCIIID = rule{"ascii_id", matchASCIIID, actASCIIID}
	ruleWord    = rule{"word", matchWord, actWord}
	ruleNumber  = rule{"number", matchNumber, actNumber}
	ruleSymbol  = rule{"symbol", matchOneOf(",(){}"), actSymbol}

	ruleDelimSpec = rule{"delimspec", matchNonBlank, actDelimSpec}

	ruleParentBlank   = rule{"parent_blank", matchBlank, actSkip}
	ruleParentNewline = rule{"parent_newline", matchNewline, actParentNewline}
	ruleFilename      = rule{"filename", matchLineContent, actFilename}

	ruleEndSample   = rule{"endsample", matchEndSample, actEndSample}
	ruleSampleBlock = rule{"sample_block", matchSampleBlock, actSampleBlock}

	ruleAny = rule{"any", matchChar, actUnrecognized}
)

// stateRules lists the rules tried in every state, in order of precedence.
// Keywords come before identifiers, so that a keyword wins over an identifier of the same length.
var stateRules = [numStates][]rule{
	Default: {
		ruleSpace,
		ruleBOM,
		ruleComment,
		ruleParent,
		ruleBox,
		ruleASCIIID,
		ruleWord,
		ruleAny,
	},
	InBox: {
		ruleSpace,
		ruleBOM,
		ruleString,
		ruleComment,
		ruleBox,
		ruleEnd,
		ruleSample,
		ruleElastic,
		ruleShapes,
		ruleDelim,
		ruleReplace,
		ruleReverse,
		rulePadding,
		ruleTo,
		ruleWith,
		ruleTags,
		ruleRxpFlag,
		ruleMeta,
		ruleASCIIID,
		ruleWord,
		ruleNumber,
		ruleSymbol,
		ruleAny,
	},
	InSample: {
		ruleEndSample,
		ruleSampleBlock,
	},
	InShapes: {
		ruleSpace,
		ruleString,
		ruleComment,
		ruleShape,
		ruleSymbol,
		ruleAny,
	},
	InElastic: {
		ruleSpace,
		ruleComment,
		ruleShape,
		ruleSymbol,
		ruleAny,
	},
	InDelimiterSpec: {
		ruleSpace,
		ruleDelimSpec,
	},
	InParent: {
		ruleParentBlank,
		ruleParentNewline,
		ruleFilename,
		ruleAny,
	},
}
