// Package fsutil provides utilities for filesystem operations.
//
// Key functionality:
//   - File writing: WriteFile
//   - Directory discovery: IsDirectory, ListSubdirectories
//   - Path operations: ExpandHomePath
package fsutil
