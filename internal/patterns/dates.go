package patterns

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar day, serialized as ISO-8601 (YYYY-MM-DD).
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.Format("2006-01-02") }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DateCandidate pairs a parsed calendar date with the text span it matched.
type DateCandidate struct {
	Date Date   `json:"date"`
	Span string `json:"span"`
}

var (
	// D.M.YYYY with optional spaces around the dots.
	reDottedDate = regexp.MustCompile(`\b(\d{1,2})\s*\.\s*(\d{1,2})\s*\.\s*(\d{4})\b`)
	// YYYY-M-D.
	reISODate = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
)

// ExtractDates scans text with the two supported date patterns. Candidates
// come back in pattern priority order: all D.M.YYYY matches first, then all
// YYYY-M-D matches, each group in text order. Matches that are not valid
// calendar dates (e.g. 31.02.2024) are silently dropped, and overlapping
// matches from the two patterns are all reported, none deduplicated.
func ExtractDates(text string) []DateCandidate {
	var out []DateCandidate
	for _, m := range reDottedDate.FindAllStringSubmatch(text, -1) {
		out = appendValidDate(out, m[0], m[3], m[2], m[1])
	}
	for _, m := range reISODate.FindAllStringSubmatch(text, -1) {
		out = appendValidDate(out, m[0], m[1], m[2], m[3])
	}
	return out
}

func appendValidDate(out []DateCandidate, span, year, month, day string) []DateCandidate {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return out
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 31 -> Mar 2); reject rollovers.
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d {
		return out
	}
	return append(out, DateCandidate{Date: Date{t}, Span: span})
}
