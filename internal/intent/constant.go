package intent

// Log prefixes
const (
	LogPrefixResolve  = "internal.intent.Resolve"
	LogPrefixClassify = "internal.intent.Classify"
)

// Resolution policy
const (
	// ConfidenceThreshold is the cutoff above which a classifier result is
	// accepted without falling back to pattern matching. Strictly greater-than.
	ConfidenceThreshold = 0.7

	// patternScoreWeight is the raw score contributed by each non-overlapping
	// pattern match.
	patternScoreWeight = 0.3

	// patternConfidenceCap bounds pattern-matched confidence.
	patternConfidenceCap = 0.8

	// DefaultProcessGroupID is the well-known root group identifier.
	DefaultProcessGroupID = "root"
)

// Classifier call settings
const (
	classifierTemperature = 0.1
	classifierMaxTokens   = 1000

	// classifierDefaultConfidence is assumed when the model omits the
	// confidence field.
	classifierDefaultConfidence = 0.5
)

// Explanations
const (
	ExplanationNoPatternMatch = "no pattern match"
	explanationParseFailure   = "failed to parse classifier response"
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "failed to parse classifier JSON, falling back to pattern matching"
)
