package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memHistory stores one entry per line, like the line editor does.
type memHistory struct {
	entries []string
}

func (m *memHistory) ReadHistory(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		m.entries = append(m.entries, sc.Text())
		n++
	}
	return n, sc.Err()
}

func (m *memHistory) WriteHistory(w io.Writer) (int, error) {
	for i, e := range m.entries {
		if _, err := io.WriteString(w, e+"\n"); err != nil {
			return i, err
		}
	}
	return len(m.entries), nil
}

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", HISTORY)

	src := &memHistory{entries: []string{"x = 1.0", "x + 1.0"}}
	require.NoError(t, saveHistory(src, path, 100))

	dst := &memHistory{}
	require.NoError(t, loadHistory(dst, path))
	assert.Equal(t, src.entries, dst.entries)

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSaveHistoryLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), HISTORY)
	src := &memHistory{entries: []string{"a", "b", "c", "d"}}
	require.NoError(t, saveHistory(src, path, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "c\nd\n", string(data))
}

func TestLoadHistoryMissing(t *testing.T) {
	dst := &memHistory{}
	require.NoError(t, loadHistory(dst, filepath.Join(t.TempDir(), HISTORY)))
	assert.Empty(t, dst.entries)
}
