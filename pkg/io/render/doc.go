// Package render turns catalog records and image facts into Markdown or
// Jupyter notebook documents.
//
// Templates use text/template with the sprig function map. Each document kind
// has an embedded default template that a template file can replace.
package render

import "errors"

// Rendering errors.
var (
	// ErrTemplateIO is returned when a template cannot be read or a document
	// cannot be written.
	ErrTemplateIO = errors.New("template I/O failed")
	// ErrTemplateInvalid is returned when a template cannot be parsed or executed.
	ErrTemplateInvalid = errors.New("invalid template")
)
