package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/ranger-pm/ranger-core/constants"
	"github.com/ranger-pm/ranger-core/internal/analyzer"
	"github.com/ranger-pm/ranger-core/internal/common"
	"github.com/ranger-pm/ranger-core/internal/extract"
	"github.com/ranger-pm/ranger-core/internal/nlp"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "analyze <document-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read document", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	model, err := nlp.Load(cfg.NLP.Language, logger)
	if err != nil {
		logger.Error("load language model", "error", err)
		os.Exit(1)
	}

	extractor := extract.NewExtractor(extract.Config{
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)
	a := analyzer.New(extractor, nlp.NewExtractor(model, logger), model, logger)

	kind := constants.MapExtToFormat(filepath.Ext(path))
	start := time.Now()
	result, err := a.Analyze(ctx, data, kind)
	if err != nil {
		logger.Error("analysis failed",
			"path", path, "format", string(kind),
			"error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
