// Package introspect describes a container image by running a fixed set of
// diagnostic commands inside ephemeral containers.
//
// Every image is pulled, inspected for its ID and architecture, and then
// probed with:
//   - cat /etc/os-release
//   - env
//   - apk info, falling back to apt list
//   - ls -1 /usr/local/bin
//
// Only pull and inspect failures abort an image. Each diagnostic is
// independent: a failed run is reported as a warning and leaves its field
// empty.
package introspect
