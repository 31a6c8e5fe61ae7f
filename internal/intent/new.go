package intent

import (
	"nifi-nlp-gateway/pkg/log"
)

type resolver struct {
	classifier Classifier
	l          log.Logger
}

var _ Resolver = (*resolver)(nil)

// New creates a Resolver. classifier may be nil, in which case every query
// is resolved through pattern matching alone.
func New(l log.Logger, classifier Classifier) Resolver {
	return &resolver{
		classifier: classifier,
		l:          l,
	}
}
