// Package catalog enumerates the repositories of an ECR Public registry alias
// and resolves the most recent image of each one.
//
// Missing data never fails a run: repositories without images, or whose images
// cannot be described, are reported with the "<none>" tag and a zero size.
// Only failures to list the repositories themselves are returned to the caller.
package catalog

// NoneTag is the tag shown for repositories without a resolvable image.
const NoneTag = "<none>"

// LatestTag is the conventional tag excluded from latest-image selection
// whenever any other tag exists.
const LatestTag = "latest"

// UngroupedName is the group of repositories whose name has no "/".
const UngroupedName = "-"
