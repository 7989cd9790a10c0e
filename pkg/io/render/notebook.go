package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// nbformat version written by MarshalNotebook. Cell ids need minor 5.
const (
	nbformatMajor = 4
	nbformatMinor = 5
)

// Notebook is a Jupyter notebook in nbformat 4.
type Notebook struct {
	Cells         []Cell         `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// Cell is a notebook cell. Only markdown cells are produced.
type Cell struct {
	CellType string         `json:"cell_type"`
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
	Source   []string       `json:"source"`
}

// NewNotebook wraps markdown in a notebook holding a single markdown cell.
func NewNotebook(markdown string) Notebook {
	return Notebook{
		Cells: []Cell{{
			CellType: "markdown",
			ID:       uuid.NewString(),
			Metadata: map[string]any{},
			Source:   SourceLines(markdown),
		}},
		Metadata:      map[string]any{},
		NBFormat:      nbformatMajor,
		NBFormatMinor: nbformatMinor,
	}
}

// SourceLines splits text into lines that keep their line endings, the way
// notebook cell sources are stored.
func SourceLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// MarshalNotebook encodes a notebook as indented JSON without HTML escaping.
func MarshalNotebook(notebook Notebook) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", " ")

	err := encoder.Encode(notebook)
	if err != nil {
		return nil, fmt.Errorf("encode notebook: %w", err)
	}

	return buf.Bytes(), nil
}
