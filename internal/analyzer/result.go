package analyzer

import (
	"github.com/ranger-pm/ranger-core/internal/nlp"
	"github.com/ranger-pm/ranger-core/internal/patterns"
)

// ExtractionResult is the structured output for one document. It is built
// once per Analyze call and never mutated afterwards; the caller owns its
// storage.
type ExtractionResult struct {
	Dates        []patterns.DateCandidate `json:"dates"`
	Measurements []patterns.Measurement   `json:"measurements"`
	Milestones   []patterns.Milestone     `json:"milestones"`
	Entities     nlp.Entities             `json:"entities"`
	Keywords     []string                 `json:"keywords"`
}
