// Package utils provides small helpers shared across ecrdocs.
//
//   - envvar: ${VAR} placeholder expansion in setting values
//   - notify: formatted user-facing messages with symbols and colors
package utils
