package nlp

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"
)

// EntityRecord is one labeled span from the model's named-entity scheme.
// Labels are open strings owned by the model, not an enum.
type EntityRecord struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Entities groups entity records by label. Within a label, records keep
// their order of appearance in the text; Labels records the first-seen
// order of the keys, which Go maps (and their sorted-key JSON encoding)
// cannot carry.
type Entities struct {
	ByLabel map[string][]EntityRecord
	Labels  []string
}

func (e Entities) MarshalJSON() ([]byte, error) {
	if e.ByLabel == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e.ByLabel)
}

// Extractor runs named-entity and keyword extraction over plain text.
type Extractor struct {
	model  *Model
	logger *slog.Logger
}

func NewExtractor(model *Model, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{model: model, logger: logger}
}

// EntitiesAndKeywords parses text once and returns the labeled entity spans
// plus the deduplicated multi-word keyword phrases. Keywords come back in
// stable first-seen order so results stay reproducible.
func (x *Extractor) EntitiesAndKeywords(text string) (Entities, []string, error) {
	ents := Entities{ByLabel: map[string][]EntityRecord{}}
	if strings.TrimSpace(text) == "" {
		return ents, nil, nil
	}
	doc, err := x.model.Parse(text)
	if err != nil {
		return Entities{}, nil, fmt.Errorf("parse document: %w", err)
	}
	for _, ent := range doc.Entities() {
		if _, ok := ents.ByLabel[ent.Label]; !ok {
			ents.Labels = append(ents.Labels, ent.Label)
		}
		ents.ByLabel[ent.Label] = append(ents.ByLabel[ent.Label], EntityRecord{
			Text:  ent.Text,
			Label: ent.Label,
		})
	}
	keywords := nounPhrases(doc.Tokens())
	x.logger.Debug("entity extraction ok",
		"labels", len(ents.Labels), "keywords", len(keywords))
	return ents, keywords, nil
}

// nounPhrases collects noun-phrase chunks of two or more tokens: maximal
// runs of adjectives and nouns in the tagged token stream, set semantics
// with first-seen output order.
func nounPhrases(toks []prose.Token) []string {
	var (
		out  []string
		run  []string
		seen = map[string]struct{}{}
	)
	flush := func() {
		if len(run) >= 2 {
			phrase := strings.Join(run, " ")
			if _, ok := seen[phrase]; !ok {
				seen[phrase] = struct{}{}
				out = append(out, phrase)
			}
		}
		run = run[:0]
	}
	for _, t := range toks {
		if isNounPhraseTag(t.Tag) {
			run = append(run, t.Text)
			continue
		}
		flush()
	}
	flush()
	return out
}

// Penn Treebank tags: NN, NNS, NNP, NNPS, JJ, JJR, JJS.
func isNounPhraseTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") || strings.HasPrefix(tag, "JJ")
}
