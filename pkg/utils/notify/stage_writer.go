package notify

import (
	"fmt"
	"io"
	"sync"
	"unicode"
	"unicode/utf8"
)

// StageWriter wraps an io.Writer and writes a blank line before every stage
// title (a line starting with a pictographic emoji) that follows earlier output.
//
// Usage:
//
//	cmd.SetOut(notify.NewStageWriter(cmd.OutOrStdout()))
type StageWriter struct {
	underlying io.Writer
	hasWritten bool
	mu         sync.Mutex
}

// NewStageWriter creates a StageWriter wrapping the given writer.
func NewStageWriter(underlying io.Writer) *StageWriter {
	return &StageWriter{underlying: underlying}
}

// Write implements io.Writer.
func (w *StageWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(data) == 0 {
		return 0, nil
	}

	if w.hasWritten && isStageTitle(data) {
		_, err := w.underlying.Write([]byte{'\n'})
		if err != nil {
			return 0, fmt.Errorf("write stage separator: %w", err)
		}
	}

	n, err := w.underlying.Write(data)
	if n > 0 {
		w.hasWritten = true
	}

	if err != nil {
		return n, fmt.Errorf("write stage output: %w", err)
	}

	return n, nil
}

// isStageTitle reports whether data starts with an emoji that is not one of
// the message symbols (►, ✔, ✗, ⚠, ℹ, ✚).
func isStageTitle(data []byte) bool {
	first, _ := utf8.DecodeRune(data)
	if first == utf8.RuneError {
		return false
	}

	switch first {
	case '►', '✔', '✗', '⚠', 'ℹ', '✚':
		return false
	}

	return unicode.Is(unicode.So, first)
}
