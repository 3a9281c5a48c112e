package anomaly

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Detection thresholds. Tuned constants, not derived values.
const (
	DefaultBlurVarianceMin  = 50.0
	DefaultRedDominanceMax  = 0.5
	DefaultDarkPixelCutoff  = 40
	DefaultDarkAreaFraction = 0.15
	DefaultMinContourArea   = 5000
	DefaultMinLargeContours = 2
)

// Flag messages for the individual heuristics.
const (
	msgDecodeFailed = "could not decode image"
	msgNoAnomalies  = "no anomalies found (limited accuracy)"
	msgAnomalies    = "anomalies detected"

	reasonBlur        = "blurry image"
	reasonRust        = "suspected rust / red dominance"
	reasonDamage      = "large dark regions, possible damage"
	reasonMissingPart = "missing parts/objects"
)

// Config holds the heuristic thresholds. Zero values fall back to the
// defaults above.
type Config struct {
	BlurVarianceMin  float64 // Laplacian variance below this flags blur
	RedDominanceMax  float64 // red share of channel means above this flags rust
	DarkPixelCutoff  int     // grayscale intensity below this counts as dark
	DarkAreaFraction float64 // dark-pixel share above this flags damage
	MinContourArea   int     // regions at or below this many pixels are ignored
	MinLargeContours int     // fewer large regions than this flags missing parts
}

// Report is the outcome of one detection call. Details carries the
// comma-joined list of triggered heuristics, or null when nothing fired.
type Report struct {
	AnomalyDetected bool    `json:"anomaly_detected"`
	Message         string  `json:"message"`
	Details         *string `json:"details"`
}

// Detector runs the image-quality heuristics. Stateless; safe for
// concurrent use.
type Detector struct {
	cfg    Config
	logger *slog.Logger
}

func NewDetector(cfg Config, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BlurVarianceMin <= 0 {
		cfg.BlurVarianceMin = DefaultBlurVarianceMin
	}
	if cfg.RedDominanceMax <= 0 {
		cfg.RedDominanceMax = DefaultRedDominanceMax
	}
	if cfg.DarkPixelCutoff <= 0 {
		cfg.DarkPixelCutoff = DefaultDarkPixelCutoff
	}
	if cfg.DarkAreaFraction <= 0 {
		cfg.DarkAreaFraction = DefaultDarkAreaFraction
	}
	if cfg.MinContourArea <= 0 {
		cfg.MinContourArea = DefaultMinContourArea
	}
	if cfg.MinLargeContours <= 0 {
		cfg.MinLargeContours = DefaultMinLargeContours
	}
	return &Detector{cfg: cfg, logger: logger}
}

// Detect decodes the image and runs each heuristic independently. An
// undecodable payload yields a terminal non-detection report; heuristic
// non-detection is never an error.
func (d *Detector) Detect(data []byte) Report {
	start := time.Now()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		d.logger.Warn("image decode failed", "bytes", len(data), "error", err)
		return Report{AnomalyDetected: false, Message: msgDecodeFailed}
	}

	p := flatten(img)
	var reasons []string

	if v := laplacianVariance(p); v < d.cfg.BlurVarianceMin {
		reasons = append(reasons, reasonBlur)
	}
	if share := p.redShare(); share > d.cfg.RedDominanceMax {
		reasons = append(reasons, reasonRust)
	}
	dark := p.darkMask(uint8(d.cfg.DarkPixelCutoff))
	if frac := dark.fraction(); frac > d.cfg.DarkAreaFraction {
		reasons = append(reasons, reasonDamage)
	}
	if n := dark.countLargeRegions(d.cfg.MinContourArea); n < d.cfg.MinLargeContours {
		reasons = append(reasons, reasonMissingPart)
	}

	d.logger.Debug("anomaly detection done",
		"format", format,
		"width", p.w, "height", p.h,
		"reasons", len(reasons),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if len(reasons) == 0 {
		return Report{AnomalyDetected: false, Message: msgNoAnomalies}
	}
	details := strings.Join(reasons, ", ")
	return Report{AnomalyDetected: true, Message: msgAnomalies, Details: &details}
}

// String renders the report for logs.
func (r Report) String() string {
	if r.Details == nil {
		return r.Message
	}
	return fmt.Sprintf("%s: %s", r.Message, *r.Details)
}
