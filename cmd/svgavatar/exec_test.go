package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/esimov/svgavatar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_Process(t *testing.T) {
	dir := t.TempDir()
	op := &Ops{PipeName: pipeName, Workers: 1}

	svgPath := filepath.Join(dir, "foo.svg")
	require.NoError(t, op.process(Entry{ID: "foo", Rings: svgavatar.Three, Stroke: "black", Out: svgPath}))

	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	expected := svgavatar.NewBuilder().Identifier("foo").Rings(svgavatar.Three).Build()
	assert.Equal(t, expected.Bytes(), data)

	ivgPath := filepath.Join(dir, "foo.ivg")
	require.NoError(t, op.process(Entry{ID: "foo", Rings: svgavatar.Three, Stroke: "black", Out: ivgPath}))

	data, err = os.ReadFile(ivgPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89IVG")))
}

func TestExec_ProcessPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	op := &Ops{PipeName: pipeName, Stdout: w}
	require.NoError(t, op.process(Entry{ID: "foo", Rings: svgavatar.One, Stroke: "black", Out: pipeName}))
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	expected := svgavatar.NewBuilder().Identifier("foo").Rings(svgavatar.One).Build()
	assert.Equal(t, expected.String(), buf.String())
}

func TestExec_Execute(t *testing.T) {
	path := writeManifest(t, `
dir: avatars
avatars:
  - id: alice
  - id: bob
    out: bob.ivg
  - id: carol
    out: missing/carol.svg
`)
	m, err := LoadManifest(path)
	require.NoError(t, err)

	op := &Ops{PipeName: pipeName, Workers: 4}
	failed, err := op.Execute(m)
	require.NoError(t, err)

	// The sub directory of carol does not exist.
	assert.Equal(t, 1, failed)
	assert.FileExists(t, filepath.Join(m.Dir, "alice.svg"))
	assert.FileExists(t, filepath.Join(m.Dir, "bob.ivg"))
	assert.NoFileExists(t, filepath.Join(m.Dir, "missing", "carol.svg"))
}

func TestExec_FeedEntries(t *testing.T) {
	done := make(chan interface{})
	entries := feedEntries(done, []Entry{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	first := <-entries
	assert.Equal(t, "a", first.ID)

	close(done)
	for range entries {
	}
}

func TestExec_HandleInterruptStops(t *testing.T) {
	done := make(chan interface{})
	exited := handleInterrupt(done, func() {})
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("the interrupt handler is still running")
	}
}
