package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranger-pm/ranger-core/constants"
	"github.com/ranger-pm/ranger-core/internal/nlp"
)

// stubText returns canned text for any payload.
type stubText struct {
	text string
	err  error
}

func (s stubText) Extract(_ context.Context, _ []byte, _ constants.Format) (string, error) {
	return s.text, s.err
}

// stubNLP fakes the language-model stages: naive sentence splitting and a
// fixed entity mapping keyed by presence in text.
type stubNLP struct {
	entities map[string][]nlp.EntityRecord
	keywords []string
}

func (s stubNLP) EntitiesAndKeywords(text string) (nlp.Entities, []string, error) {
	ents := nlp.Entities{ByLabel: map[string][]nlp.EntityRecord{}}
	for label, recs := range s.entities {
		ents.ByLabel[label] = recs
		ents.Labels = append(ents.Labels, label)
	}
	if text == "" {
		return nlp.Entities{ByLabel: map[string][]nlp.EntityRecord{}}, nil, nil
	}
	return ents, s.keywords, nil
}

func (s stubNLP) Sentences(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	var out []string
	for _, part := range strings.SplitAfter(text, ". ") {
		if strings.TrimSpace(part) != "" {
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out, nil
}

func TestAnalyzeAssemblesAllPasses(t *testing.T) {
	text := "Milník: dokončení do 1.6.2024. Nosník má tloušťku 12,5 mm."
	model := stubNLP{
		entities: map[string][]nlp.EntityRecord{
			"CARDINAL": {{Text: "12,5", Label: "CARDINAL"}},
		},
		keywords: []string{"ocelový nosník"},
	}
	a := New(stubText{text: text}, model, model, nil)

	res, err := a.Analyze(context.Background(), []byte("payload"), constants.IMAGE)
	require.NoError(t, err)

	require.Len(t, res.Dates, 1)
	assert.Equal(t, "2024-06-01", res.Dates[0].Date.String())

	require.Len(t, res.Measurements, 1)
	assert.Equal(t, 12.5, res.Measurements[0].Value)
	assert.Equal(t, "mm", res.Measurements[0].Unit)

	require.Len(t, res.Milestones, 1)
	assert.Equal(t, "2024-06-01", res.Milestones[0].Date.String())

	assert.Equal(t, []string{"ocelový nosník"}, res.Keywords)
	assert.Contains(t, res.Entities.ByLabel, "CARDINAL")
}

func TestAnalyzePropagatesExtractionFailure(t *testing.T) {
	wantErr := errors.New("decode failed")
	a := New(stubText{err: wantErr}, stubNLP{}, stubNLP{}, nil)

	res, err := a.Analyze(context.Background(), nil, constants.PDF)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, wantErr)
}

func TestAnalyzeEmptyTextYieldsEmptyCollections(t *testing.T) {
	a := New(stubText{text: ""}, stubNLP{}, stubNLP{}, nil)

	res, err := a.Analyze(context.Background(), nil, constants.SPREADSHEET)
	require.NoError(t, err)
	assert.Empty(t, res.Dates)
	assert.Empty(t, res.Measurements)
	assert.Empty(t, res.Milestones)
	assert.Empty(t, res.Keywords)

	// collections serialize as [] / {}, never null
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null")
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	text := "Termín: 15.3.2024 a 2024-03-20, nosnost 500 kg/m²."
	model := stubNLP{keywords: []string{"druhá etapa"}}
	a := New(stubText{text: text}, model, model, nil)

	first, err := a.Analyze(context.Background(), []byte("same"), constants.IMAGE)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), []byte("same"), constants.IMAGE)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeDateOrderAndNoDedup(t *testing.T) {
	model := stubNLP{}
	a := New(stubText{text: "Termín: 15.3.2024 a 2024-03-20"}, model, model, nil)

	res, err := a.Analyze(context.Background(), nil, constants.IMAGE)
	require.NoError(t, err)
	require.Len(t, res.Dates, 2)
	assert.Equal(t, "2024-03-15", res.Dates[0].Date.String())
	assert.Equal(t, "2024-03-20", res.Dates[1].Date.String())
}
