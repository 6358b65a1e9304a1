// Package listfilter merges line-oriented list files, such as editor
// extension lists, dropping blank lines and comments.
package listfilter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mcncl/cfgmerge/internal/errors"
)

// DefaultCommentPrefix marks a line as a comment once surrounding whitespace
// is trimmed.
const DefaultCommentPrefix = "#"

// Filterer keeps the entries of list files.
type Filterer struct {
	CommentPrefix string
}

// NewFilterer returns a Filterer using commentPrefix, or DefaultCommentPrefix
// when it is empty.
func NewFilterer(commentPrefix string) *Filterer {
	if commentPrefix == "" {
		commentPrefix = DefaultCommentPrefix
	}
	return &Filterer{CommentPrefix: commentPrefix}
}

// Filter returns the entries read from r in order. Each line is trimmed of
// surrounding whitespace; empty lines and comment lines are dropped.
func (f *Filterer) Filter(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	prefix := f.CommentPrefix
	if prefix == "" {
		prefix = DefaultCommentPrefix
	}

	var entries []string
	for _, line := range strings.FieldsFunc(string(data), isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, prefix) {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// FilterFiles filters each path in turn and concatenates the entries. Every
// file is closed before the next one is opened. The first missing file stops
// the run with an error naming it.
func (f *Filterer) FilterFiles(paths []string) ([]string, error) {
	var entries []string
	for _, path := range paths {
		fileEntries, err := f.filterFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("Filtered list", "path", path, "entries", len(fileEntries))
		entries = append(entries, fileEntries...)
	}
	return entries, nil
}

func (f *Filterer) filterFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(fmt.Sprintf("%s not found", path), errors.ErrFileNotFound)
		}
		return nil, errors.NewInputError(fmt.Sprintf("failed to open file '%s'", path), err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("Error closing file", "path", path, "error", err)
		}
	}()

	entries, err := f.Filter(file)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	return entries, nil
}

// Render joins entries one per line. The result ends in a newline unless
// there are no entries, in which case it is empty.
func Render(entries []string) []byte {
	if len(entries) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(entries, "\n") + "\n")
}

// isLineBreak reports the characters that end a line in a text file: LF, CR,
// and the rarer vertical tab, form feed, separators, NEL, LS and PS.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
