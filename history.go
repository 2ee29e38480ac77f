package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// historyStore is the part of the line editor that holds history.
type historyStore interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// lockHistory takes the lock guarding path so concurrent REPL sessions
// read and write the history file one at a time.
func lockHistory(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	return lock, nil
}

// loadHistory reads path into store. A missing file is not an error.
func loadHistory(store historyStore, path string) error {
	lock, err := lockHistory(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	if _, err := store.ReadHistory(f); err != nil {
		return fmt.Errorf("read history %s: %w", path, err)
	}
	return nil
}

// saveHistory writes the newest limit entries of store to path.
func saveHistory(store historyStore, path string, limit int) error {
	var buf bytes.Buffer
	if _, err := store.WriteHistory(&buf); err != nil {
		return fmt.Errorf("collect history: %w", err)
	}
	lines := strings.SplitAfter(buf.String(), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	lock, err := lockHistory(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	// write then rename so readers never see a truncated file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.Join(lines, "")), 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace history %s: %w", path, err)
	}
	return nil
}
