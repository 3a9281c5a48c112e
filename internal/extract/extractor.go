package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/ranger-pm/ranger-core/constants"
	"github.com/ranger-pm/ranger-core/internal/common"
)

type Config struct {
	Language    string // tesseract language, default "eng"
	TessdataDir string // passed through via TESSDATA_PREFIX; empty = engine default
}

// DecodeError marks a payload that could not be decoded as its declared
// document format. It carries the underlying decode failure and matches
// common.ErrDecode.
type DecodeError struct {
	Kind constants.Format
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s document: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{common.ErrDecode, e.Err}
}

// ocrClient is the slice of the gosseract client the extractor uses.
// Tests substitute a stub.
type ocrClient interface {
	SetImageFromBytes(data []byte) error
	SetLanguage(langs ...string) error
	Text() (string, error)
	Close() error
}

// Extractor converts raw document bytes into plain text. One instance is
// safe for concurrent use; each image call gets its own OCR client.
type Extractor struct {
	cfg       Config
	newClient func() ocrClient
	logger    *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &Extractor{
		cfg:       cfg,
		newClient: func() ocrClient { return gosseract.NewClient() },
		logger:    logger,
	}
}

// Extract picks a strategy based on the document format.
func (e *Extractor) Extract(ctx context.Context, data []byte, kind constants.Format) (string, error) {
	start := time.Now()
	var (
		text string
		err  error
	)
	switch kind {
	case constants.PDF:
		text, err = e.extractPDF(data)
	case constants.SPREADSHEET:
		text, err = e.extractSpreadsheet(data)
	case constants.IMAGE:
		text, err = e.extractImage(ctx, data)
	default:
		return "", fmt.Errorf("unsupported document format: %q", kind)
	}
	if err != nil {
		e.logger.Error("text extraction failed",
			"format", string(kind), "bytes", len(data), "error", err)
		return "", err
	}
	e.logger.Debug("text extraction ok",
		"format", string(kind),
		"bytes", len(data),
		"chars", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
