package qr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	data, err := PNG("https://example.org/members/42", 0)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PNG magic bytes.
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestPNG_EmptyContent(t *testing.T) {
	_, err := PNG("", 256)
	require.Error(t, err)
}
