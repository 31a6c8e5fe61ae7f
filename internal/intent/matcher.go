package intent

import (
	"fmt"
	"strings"
)

// matchPatterns scores the query against every catalog intent and returns
// the fully resolved pattern-based result. For each intent the score is the
// maximum over its patterns of (non-overlapping match count x weight); the
// running best across intents uses strict greater-than so ties keep the
// earliest catalog entry. Final confidence is capped at patternConfidenceCap.
func matchPatterns(query string) ProcessedIntent {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	best := IntentUnknown
	bestScore := 0.0

	for _, entry := range catalog {
		intentScore := 0.0
		for _, pattern := range entry.patterns {
			n := len(pattern.FindAllString(queryLower, -1))
			if score := float64(n) * patternScoreWeight; score > intentScore {
				intentScore = score
			}
		}
		if intentScore > bestScore {
			best = entry.intent
			bestScore = intentScore
		}
	}

	if best == IntentUnknown {
		return ProcessedIntent{
			Intent:      IntentUnknown,
			Parameters:  NewParameters(),
			Confidence:  0.0,
			RawQuery:    query,
			Explanation: ExplanationNoPatternMatch,
		}
	}

	confidence := bestScore
	if confidence > patternConfidenceCap {
		confidence = patternConfidenceCap
	}

	return ProcessedIntent{
		Intent:      best,
		Parameters:  extractParameters(query, best),
		Confidence:  confidence,
		RawQuery:    query,
		Explanation: fmt.Sprintf("matched pattern for %s", best),
	}
}
