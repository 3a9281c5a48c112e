package analyzer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ranger-pm/ranger-core/constants"
	"github.com/ranger-pm/ranger-core/internal/nlp"
	"github.com/ranger-pm/ranger-core/internal/patterns"
)

// TextExtractor is Stage 1: document bytes -> plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, kind constants.Format) (string, error)
}

// EntityExtractor is the language-model stage: text -> entities + keywords.
type EntityExtractor interface {
	EntitiesAndKeywords(text string) (nlp.Entities, []string, error)
}

// SentenceSegmenter exposes the model's sentence boundary detection, which
// milestone extraction reuses.
type SentenceSegmenter interface {
	Sentences(text string) ([]string, error)
}

// Analyzer coordinates text extraction and the four downstream extraction
// passes. Stateless between calls; safe for concurrent use.
type Analyzer struct {
	text     TextExtractor
	entities EntityExtractor
	segment  SentenceSegmenter
	logger   *slog.Logger
}

func New(text TextExtractor, entities EntityExtractor, segment SentenceSegmenter, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{text: text, entities: entities, segment: segment, logger: logger}
}

// Analyze is the single entry point for document understanding. A text
// extraction failure propagates as-is and produces no partial result. The
// four extraction passes are read-only over the same immutable text and run
// concurrently.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, kind constants.Format) (*ExtractionResult, error) {
	callID := uuid.New()
	start := time.Now()

	text, err := a.text.Extract(ctx, data, kind)
	if err != nil {
		a.logger.Error("analyze.extract.failed",
			"call_id", callID, "format", string(kind), "error", err)
		return nil, err
	}

	var (
		wg           sync.WaitGroup
		dates        []patterns.DateCandidate
		measurements []patterns.Measurement
		milestones   []patterns.Milestone
		entities     nlp.Entities
		keywords     []string
		entityErr    error
		segmentErr   error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		dates = patterns.ExtractDates(text)
	}()
	go func() {
		defer wg.Done()
		measurements = patterns.ExtractMeasurements(text)
	}()
	go func() {
		defer wg.Done()
		var sentences []string
		if sentences, segmentErr = a.segment.Sentences(text); segmentErr == nil {
			milestones = patterns.ExtractMilestones(sentences)
		}
	}()
	go func() {
		defer wg.Done()
		entities, keywords, entityErr = a.entities.EntitiesAndKeywords(text)
	}()
	wg.Wait()

	if entityErr != nil {
		a.logger.Error("analyze.entities.failed", "call_id", callID, "error", entityErr)
		return nil, entityErr
	}
	if segmentErr != nil {
		a.logger.Error("analyze.segment.failed", "call_id", callID, "error", segmentErr)
		return nil, segmentErr
	}

	result := &ExtractionResult{
		Dates:        emptyIfNil(dates),
		Measurements: emptyIfNil(measurements),
		Milestones:   emptyIfNil(milestones),
		Entities:     entities,
		Keywords:     emptyIfNil(keywords),
	}
	a.logger.Info("analyze.ok",
		"call_id", callID,
		"format", string(kind),
		"chars", len(text),
		"dates", len(result.Dates),
		"measurements", len(result.Measurements),
		"milestones", len(result.Milestones),
		"keywords", len(result.Keywords),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// emptyIfNil keeps absent collections serializing as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
