// Package svc provides the service layer between the CLI commands and the
// clients.
//
// Subpackages:
//   - catalog: repository enumeration and latest image selection
//   - introspect: image facts gathered from short-lived containers
package svc
