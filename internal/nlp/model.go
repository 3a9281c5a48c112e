package nlp

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jdkato/prose/v2"

	"github.com/ranger-pm/ranger-core/internal/common"
)

// Model is the process-wide handle over the loaded statistical language
// model. Loading is expensive, so construct one at startup and inject it
// wherever segmentation or entity extraction is needed. The handle is
// read-only after Load and safe for concurrent use.
type Model struct {
	lang   string
	logger *slog.Logger
}

// Load initializes the language model for the given language tag. A model
// that cannot be loaded is fatal at startup, not per call.
func Load(lang string, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if lang == "" {
		lang = "en"
	}
	if lang != "en" {
		return nil, fmt.Errorf("%w: no trained model for language %q", common.ErrModelUnavailable, lang)
	}

	m := &Model{lang: lang, logger: logger}

	// Warm the tagger and extractor so a broken model surfaces here
	// instead of mid-pipeline, and per-call latency stays flat.
	start := time.Now()
	if _, err := m.Parse("warmup"); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrModelUnavailable, err)
	}
	logger.Info("language model loaded",
		"lang", lang, "duration_ms", time.Since(start).Milliseconds())
	return m, nil
}

// Language reports the language tag the model was loaded for.
func (m *Model) Language() string { return m.lang }

// Parse runs segmentation, tokenization, POS tagging and entity extraction.
func (m *Model) Parse(text string) (*prose.Document, error) {
	return prose.NewDocument(text)
}

// Sentences splits text using the model's sentence boundary detection.
func (m *Model) Sentences(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segment sentences: %w", err)
	}
	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out, nil
}
