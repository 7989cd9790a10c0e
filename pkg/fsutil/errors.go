package fsutil

import "errors"

var (
	// ErrEmptyOutputPath is returned when no output path is given.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	// ErrNotDirectory is returned when a path exists but is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)

const (
	dirPermUserGroupRX = 0o755
	filePermUserRW     = 0o644
)
