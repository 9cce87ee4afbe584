package svg

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_Format(t *testing.T) {
	d := NewData().
		MoveTo(0, 0).
		LineTo(0, -1).
		EllipticalArcTo(1, 1, 0, false, true, 0.5, -0.25).
		Close()

	assert.Equal(t, "M0,0 L0,-1 A1,1,0,0,1,0.5,-0.25 z", d.String())
}

func TestData_NegativeZero(t *testing.T) {
	d := NewData().MoveTo(math.Copysign(0, -1), 0)
	assert.Equal(t, "M0,0", d.String())
}

func TestElement_SetOverwritesInPlace(t *testing.T) {
	assert := assert.New(t)

	e := NewPath().Set("fill", "red").Set("stroke", "black")
	e.Set("fill", "blue")

	v, ok := e.Get("fill")
	assert.True(ok)
	assert.Equal("blue", v)
	assert.Equal(`<path fill="blue" stroke="black"/>`+"\n", e.String())

	e.Remove("fill")
	_, ok = e.Get("fill")
	assert.False(ok)
}

func TestElement_EscapesAttributes(t *testing.T) {
	e := NewPath().Set("stroke", `"><script>`)
	out := e.String()

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script")
}

func TestElement_ChildrenShareTheTree(t *testing.T) {
	assert := assert.New(t)

	doc := NewDocument()
	doc.Append(NewGroup().Append(NewPath()))

	doc.Children()[0].Children()[0].Set("d", "M0,0 z")
	out := doc.String()

	assert.Contains(out, `<path d="M0,0 z"/>`)
	// Serializing twice yields the same bytes.
	assert.Equal(out, doc.String())
}

func TestDocument_Layout(t *testing.T) {
	assert := assert.New(t)

	doc := NewDocument().SetViewBox(-1.1, -1.1, 2.3, 2.3)
	g := NewGroup()
	g.Append(NewPath().Set("d", "M0,0 z"), NewPath().Set("d", "M1,1 z"))
	doc.Append(g)

	out := doc.String()
	assert.True(strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-1.1 -1.1 2.3 2.3">`))
	assert.Equal(2, strings.Count(out, "<path "))
	assert.Equal(1, strings.Count(out, "<g>"))
	assert.True(strings.HasSuffix(out, "  </g>\n</svg>\n"))
	assert.Contains(out, "\n  <g>\n    <path d=\"M0,0 z\"/>\n    <path d=\"M1,1 z\"/>\n")
	assert.Equal(out, string(doc.Bytes()))
}

func TestDocument_Save(t *testing.T) {
	doc := NewDocument().SetViewBox(0, 0, 1, 1)
	path := filepath.Join(t.TempDir(), "doc.svg")

	require.NoError(t, doc.Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.String(), string(data))
}

func TestDocument_SaveMissingDir(t *testing.T) {
	doc := NewDocument()
	err := doc.Save(filepath.Join(t.TempDir(), "missing", "doc.svg"))

	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
