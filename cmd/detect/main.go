package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ranger-pm/ranger-core/internal/anomaly"
	"github.com/ranger-pm/ranger-core/internal/common"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "detect <image-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read image", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	detector := anomaly.NewDetector(anomaly.Config{
		BlurVarianceMin:  cfg.Anomaly.BlurVarianceMin,
		RedDominanceMax:  cfg.Anomaly.RedDominanceMax,
		DarkPixelCutoff:  cfg.Anomaly.DarkPixelCutoff,
		DarkAreaFraction: cfg.Anomaly.DarkAreaFraction,
		MinContourArea:   cfg.Anomaly.MinContourArea,
		MinLargeContours: cfg.Anomaly.MinLargeContours,
	}, logger)

	report := detector.Detect(data)
	logger.Info("detection done", "path", path, "anomaly", report.AnomalyDetected)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Error("encode report", "error", err)
		os.Exit(1)
	}
}
