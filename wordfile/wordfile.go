// Package wordfile owns the word-list file on disk. The solver engine only
// ever receives an already-loaded word set; loading and the occasional
// "that is not a real word" removal happen here, at the shell boundary.
package wordfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrWordNotFound is returned by Remove when the word is not in the file.
var ErrWordNotFound = errors.New("wordfile: word not found")

// Load reads a word-list file, one word per line, trimmed and lowercased.
// Blank lines are skipped. No length filtering happens here; the session
// dictionary filters to its word length.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// Remove rewrites the word list at path without word. The new list is
// written to a temp file in the same directory and renamed into place, so a
// crash mid-write never leaves a truncated dictionary behind.
func Remove(path, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	words, err := Load(path)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(words))
	found := false
	for _, w := range words {
		if w == word {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		return fmt.Errorf("%w: %q in %s", ErrWordNotFound, word, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".words-*")
	if err != nil {
		return fmt.Errorf("create temp word list: %w", err)
	}
	defer os.Remove(tmp.Name())

	bw := bufio.NewWriter(tmp)
	for _, w := range kept {
		if _, err := bw.WriteString(w + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("write word list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write word list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp word list: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace word list: %w", err)
	}
	return nil
}
