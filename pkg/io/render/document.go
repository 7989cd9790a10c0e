package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dev1-sg/ecrdocs/pkg/fsutil"
	"github.com/dev1-sg/ecrdocs/pkg/io/configmanager"
)

// ResolveFormat turns the configured format into markdown or notebook.
// Auto selects notebook for .ipynb outputs and markdown otherwise.
func ResolveFormat(format, outputPath string) (string, error) {
	switch format {
	case configmanager.FormatMarkdown, configmanager.FormatNotebook:
		return format, nil
	case configmanager.FormatAuto, "":
		if strings.EqualFold(filepath.Ext(outputPath), ".ipynb") {
			return configmanager.FormatNotebook, nil
		}

		return configmanager.FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", configmanager.ErrInvalidFormat, format)
	}
}

// WriteDocument writes rendered markdown to outputPath in the resolved format.
func WriteDocument(outputPath, format, markdown string) error {
	resolved, err := ResolveFormat(format, outputPath)
	if err != nil {
		return err
	}

	content := []byte(markdown)

	if resolved == configmanager.FormatNotebook {
		content, err = MarshalNotebook(NewNotebook(markdown))
		if err != nil {
			return err
		}
	}

	err = fsutil.WriteFile(content, outputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTemplateIO, err)
	}

	return nil
}
