package svgavatar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/shiny/iconvg"
)

func TestIconVG_Metadata(t *testing.T) {
	data, err := NewBuilder().Identifier("foo").Rings(Three).Build().IconVG()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89IVG")))

	m, err := iconvg.DecodeMetadata(data)
	require.NoError(t, err)

	const delta = 1e-5
	assert.InDelta(t, -1.1, m.ViewBox.Min[0], delta)
	assert.InDelta(t, -1.1, m.ViewBox.Min[1], delta)
	assert.InDelta(t, 1.2, m.ViewBox.Max[0], delta)
	assert.InDelta(t, 1.2, m.ViewBox.Max[1], delta)
}

func TestIconVG_Decodes(t *testing.T) {
	data, err := NewBuilder().Identifier("foo").Build().IconVG()
	require.NoError(t, err)

	var dst iconvg.Encoder
	require.NoError(t, iconvg.Decode(&dst, data, nil))
	_, err = dst.Bytes()
	assert.NoError(t, err)
}

func TestIconVG_Deterministic(t *testing.T) {
	a, err := NewBuilder().Identifier("foo").Build().IconVG()
	require.NoError(t, err)
	b, err := NewBuilder().Identifier("foo").Build().IconVG()
	require.NoError(t, err)
	c, err := NewBuilder().Identifier("bar").Build().IconVG()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestIconVG_IgnoresDocumentChanges(t *testing.T) {
	avatar := NewBuilder().Identifier("foo").Build()
	before, err := avatar.IconVG()
	require.NoError(t, err)

	avatar.Document().Set("viewBox", "0 0 1 1")
	after, err := avatar.IconVG()
	require.NoError(t, err)

	assert.Equal(t, before, after)
}
