// Package notify writes formatted, severity-tagged notifications for CLI users.
//
// Message types include success (✔), error (✗), warning (⚠), info (ℹ),
// activity (►), generate (✚), and title messages with a custom emoji.
//
// [StageWriter] wraps an io.Writer and inserts a blank line before every stage
// title after the first, so each image or document gets its own block.
package notify
