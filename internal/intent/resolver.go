package intent

import "context"

// Resolve applies the two-tier policy: the classifier result is accepted
// only when its confidence is strictly above ConfidenceThreshold; every
// other outcome, including classifier transport failures, falls back to the
// pattern matcher. The fallback is the result of record, never blended with
// the classifier's output.
func (r *resolver) Resolve(ctx context.Context, query string) ProcessedIntent {
	if r.classifier != nil {
		result, err := r.classifier.Classify(ctx, query)
		if err != nil {
			r.l.Warnf(ctx, "%s: classifier failed, falling back to pattern matching: %v", LogPrefixResolve, err)
		} else if result.Confidence > ConfidenceThreshold {
			r.l.Infof(ctx, "%s: classified %q as %s (confidence %.2f)", LogPrefixResolve, query, result.Intent, result.Confidence)
			return result
		}
	}

	result := matchPatterns(query)
	r.l.Infof(ctx, "%s: pattern-matched %q as %s (confidence %.2f)", LogPrefixResolve, query, result.Intent, result.Confidence)
	return result
}
