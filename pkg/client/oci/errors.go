package oci

import "errors"

// Registry lookup errors.
var (
	// ErrReferenceRequired indicates that no image reference was provided.
	ErrReferenceRequired = errors.New("image reference is required")
	// ErrInvalidReference indicates that the image reference cannot be parsed.
	ErrInvalidReference = errors.New("invalid image reference")
	// ErrRegistryUnreachable is returned when the registry cannot be reached.
	ErrRegistryUnreachable = errors.New("registry is unreachable")
	// ErrRegistryAuthRequired is returned when the registry rejects anonymous access.
	ErrRegistryAuthRequired = errors.New("registry requires authentication")
	// ErrRegistryPermissionDenied is returned when the credentials lack pull access.
	ErrRegistryPermissionDenied = errors.New("registry access denied")
	// ErrManifestNotFound is returned when the repository or tag does not exist.
	ErrManifestNotFound = errors.New("manifest not found")
)
