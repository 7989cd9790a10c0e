package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/dev1-sg/ecrdocs/pkg/svc/catalog"
	"github.com/dev1-sg/ecrdocs/pkg/svc/introspect"
)

// Embedded template names.
const (
	CatalogTemplate = "catalog.md.tmpl"
	ImageTemplate   = "image.md.tmpl"
)

// TimestampLayout is the layout of the "last updated" timestamp.
const TimestampLayout = "Mon Jan _2 15:04:05 2006 MST"

//go:embed templates/*.tmpl
var templates embed.FS

// CatalogData is the data available to catalog templates.
type CatalogData struct {
	Items     []catalog.RepositoryRecord
	UpdatedAt string
	Alias     string
	URI       string
}

// ImageData is the data available to image templates.
type ImageData struct {
	Context   introspect.ImageFacts
	UpdatedAt string
}

// FormatTimestamp formats t in local time with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// RenderCatalog renders the catalog document. An empty templatePath selects
// the embedded template.
func RenderCatalog(templatePath string, data CatalogData) (string, error) {
	return render(templatePath, CatalogTemplate, data)
}

// RenderImage renders the document of one image. An empty templatePath
// selects the embedded template.
func RenderImage(templatePath string, data ImageData) (string, error) {
	return render(templatePath, ImageTemplate, data)
}

// LoadTemplate returns the template text at path, or the embedded template
// named name when path is empty.
func LoadTemplate(path, name string) (string, error) {
	var (
		content []byte
		err     error
	)

	if path == "" {
		content, err = templates.ReadFile("templates/" + name)
	} else {
		content, err = os.ReadFile(path) //nolint:gosec // path is user configuration
	}

	if err != nil {
		return "", fmt.Errorf("%w: read template %s: %w", ErrTemplateIO, describe(path, name), err)
	}

	return string(content), nil
}

func render(path, name string, data any) (string, error) {
	text, err := LoadTemplate(path, name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: parse %s: %w", ErrTemplateInvalid, describe(path, name), err)
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("%w: execute %s: %w", ErrTemplateInvalid, describe(path, name), err)
	}

	return buf.String(), nil
}

func describe(path, name string) string {
	if path == "" {
		return "embedded " + name
	}

	return path
}
