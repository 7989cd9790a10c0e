package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes content to output, creating missing parent directories
// and replacing any existing file.
func WriteFile(content []byte, output string) error {
	if output == "" {
		return ErrEmptyOutputPath
	}

	output = filepath.Clean(output)
	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, content, filePermUserRW)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return nil
}
