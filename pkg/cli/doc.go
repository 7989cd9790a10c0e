// Package cli holds the ecrdocs command tree and its terminal helpers.
//
//   - cli/cmd: the root command and the catalog, image and images subcommands
//   - cli/ui/errorhandler: cobra execution with normalized error messages
package cli
