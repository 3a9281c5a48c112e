package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranger-pm/ranger-core/constants"
	"github.com/ranger-pm/ranger-core/internal/common"
)

func TestExtractPDFMalformedPayload(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), []byte("%PDF- not really"), constants.PDF)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecode))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, constants.PDF, decodeErr.Kind)
}

func TestExtractPDFEmptyPayload(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), nil, constants.PDF)
	assert.True(t, errors.Is(err, common.ErrDecode))
}
