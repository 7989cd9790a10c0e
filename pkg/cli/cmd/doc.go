// Package cmd provides the command-line interface for ecrdocs.
//
// The root command carries the configuration flags shared by every
// subcommand:
//   - catalog: document every repository of the registry group
//   - image: document one image from the source tree
//   - images: document every image from the source tree
package cmd
