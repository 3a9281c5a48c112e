package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDatesBothPatterns(t *testing.T) {
	got := ExtractDates("Termín: 15.3.2024 a 2024-03-20")
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-15", got[0].Date.String())
	assert.Equal(t, "15.3.2024", got[0].Span)
	assert.Equal(t, "2024-03-20", got[1].Date.String())
	assert.Equal(t, "2024-03-20", got[1].Span)
}

func TestExtractDatesInvalidCalendarDateDropped(t *testing.T) {
	assert.Empty(t, ExtractDates("31.02.2024"))
	assert.Empty(t, ExtractDates("2024-02-31"))
	assert.Empty(t, ExtractDates("1.13.2024"))
}

func TestExtractDatesSpacedDots(t *testing.T) {
	got := ExtractDates("dokončení do 1. 6. 2024")
	require.Len(t, got, 1)
	assert.Equal(t, NewDate(2024, time.June, 1), got[0].Date)
	assert.Equal(t, "1. 6. 2024", got[0].Span)
}

func TestExtractDatesPatternPriorityOrder(t *testing.T) {
	// All dotted matches precede all ISO matches regardless of text order.
	got := ExtractDates("2024-01-02 pak 3.4.2024")
	require.Len(t, got, 2)
	assert.Equal(t, "2024-04-03", got[0].Date.String())
	assert.Equal(t, "2024-01-02", got[1].Date.String())
}

func TestExtractDatesNoDedup(t *testing.T) {
	got := ExtractDates("5.6.2024 a 5.6.2024")
	assert.Len(t, got, 2)
}

func TestExtractDatesEmptyText(t *testing.T) {
	assert.Empty(t, ExtractDates(""))
	assert.Empty(t, ExtractDates("Projekt bude hotov brzy."))
}
