package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_Model(t *testing.T) {
	n, err := Count("Act as language learning tests generator.", "gpt-3.5-turbo")
	require.NoError(t, err)
	assert.Greater(t, n, 0)
}

func TestCount_EncodingName(t *testing.T) {
	n, err := Count("hello world", "cl100k_base")
	require.NoError(t, err)
	assert.Greater(t, n, 0)
}

func TestCount_UnknownModelFallsBack(t *testing.T) {
	viaFallback, err := Count("hello world", "claude-haiku-4-5-20251001")
	require.NoError(t, err)

	direct, err := Count("hello world", fallbackEncoding)
	require.NoError(t, err)

	assert.Equal(t, direct, viaFallback)
}

func TestCount_Empty(t *testing.T) {
	n, err := Count("", "cl100k_base")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
