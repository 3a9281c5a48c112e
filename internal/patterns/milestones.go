package patterns

import "strings"

// Milestone is a keyword-flagged sentence carrying a resolvable date. The
// date is always present; keyword sentences without one are never recorded.
type Milestone struct {
	Description string `json:"description"`
	Date        Date   `json:"date"`
}

// Trigger literals for the deployment language (Czech): milestone, phase,
// stage, deadline and term/date. Matched against the lowercased sentence.
var milestoneKeywords = []string{
	"milník",
	"fáze",
	"etapa",
	"termín",
	"deadline",
}

// ExtractMilestones filters pre-segmented sentences down to those that
// contain at least one trigger keyword and at least one parseable date.
// When a sentence holds several dates the first one wins.
func ExtractMilestones(sentences []string) []Milestone {
	var out []Milestone
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if !containsMilestoneKeyword(lower) {
			continue
		}
		dates := ExtractDates(sentence)
		if len(dates) == 0 {
			continue
		}
		out = append(out, Milestone{
			Description: strings.TrimSpace(sentence),
			Date:        dates[0].Date,
		})
	}
	return out
}

func containsMilestoneKeyword(lower string) bool {
	for _, kw := range milestoneKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
