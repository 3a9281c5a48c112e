package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	OCR     OCRConfig
	NLP     NLPConfig
	Anomaly AnomalyConfig
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Language    string
	TessdataDir string
}

// NLPConfig holds language-model configuration
type NLPConfig struct {
	Language string
}

// AnomalyConfig holds the anomaly-detection thresholds. Zero values fall
// back to the detector defaults.
type AnomalyConfig struct {
	BlurVarianceMin  float64
	RedDominanceMax  float64
	DarkPixelCutoff  int
	DarkAreaFraction float64
	MinContourArea   int
	MinLargeContours int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Language:    getEnv("OCR_LANG", "eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
		NLP: NLPConfig{
			Language: getEnv("NLP_LANG", "en"),
		},
		Anomaly: AnomalyConfig{
			BlurVarianceMin:  getEnvAsFloat64("ANOMALY_BLUR_VARIANCE_MIN", 0),
			RedDominanceMax:  getEnvAsFloat64("ANOMALY_RED_DOMINANCE_MAX", 0),
			DarkPixelCutoff:  getEnvAsInt("ANOMALY_DARK_PIXEL_CUTOFF", 0),
			DarkAreaFraction: getEnvAsFloat64("ANOMALY_DARK_AREA_FRACTION", 0),
			MinContourArea:   getEnvAsInt("ANOMALY_MIN_CONTOUR_AREA", 0),
			MinLargeContours: getEnvAsInt("ANOMALY_MIN_LARGE_CONTOURS", 0),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.OCR.Language == "" {
		return NewAppError("CONFIG_ERROR", "OCR_LANG is required", ErrInvalidInput)
	}
	if c.NLP.Language == "" {
		return NewAppError("CONFIG_ERROR", "NLP_LANG is required", ErrInvalidInput)
	}
	return nil
}
