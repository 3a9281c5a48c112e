package patterns

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Measurement categories.
const (
	CategoryDimension    = "dimension"
	CategoryLoadCapacity = "load_capacity"
)

// Measurement is a unit-suffixed number found in text. Value is normalized
// to a decimal point and is always finite and non-negative.
type Measurement struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// Compound units first so kg/m² is not consumed as kg.
var reMeasurement = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(kg/m²|t/m²|mm\b|cm\b|kg\b|m\b|t\b)`)

var unitCategories = map[string]string{
	"mm":    CategoryDimension,
	"cm":    CategoryDimension,
	"m":     CategoryDimension,
	"kg":    CategoryDimension,
	"t":     CategoryDimension,
	"kg/m²": CategoryLoadCapacity,
	"t/m²":  CategoryLoadCapacity,
}

// ExtractMeasurements finds unit-suffixed numbers in text order. A decimal
// comma is normalized to a decimal point before parsing; values that fail
// to parse are dropped rather than reported as errors.
func ExtractMeasurements(text string) []Measurement {
	var out []Measurement
	for _, m := range reMeasurement.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", ".")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(value, 0) || math.IsNaN(value) || value < 0 {
			continue
		}
		unit := m[2]
		out = append(out, Measurement{
			Value:    value,
			Unit:     unit,
			Category: unitCategories[unit],
		})
	}
	return out
}
