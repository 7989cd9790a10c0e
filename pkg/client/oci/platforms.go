// Package oci reads image metadata straight from OCI registries.
package oci

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/distribution/reference"
	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
)

// PlatformLister resolves the platforms an image is published for.
type PlatformLister interface {
	// Platforms returns the os/arch[/variant] entries of the image behind
	// opts.Reference. Multi-platform indexes yield one entry per manifest,
	// single images the platform of their config.
	Platforms(ctx context.Context, opts PlatformOptions) ([]string, error)
}

// PlatformOptions contains options for listing image platforms.
type PlatformOptions struct {
	// Reference is the image reference, e.g. "public.ecr.aws/alias/base/alpine:latest".
	// Short names are normalized the way docker does ("alpine" -> docker.io/library/alpine:latest).
	Reference string
	// Username is the optional username for authentication.
	Username string
	// Password is the optional password/token for authentication.
	Password string
	// Insecure allows HTTP connections.
	Insecure bool
}

type lister struct{}

// NewPlatformLister creates a PlatformLister backed by go-containerregistry.
func NewPlatformLister() PlatformLister {
	return &lister{}
}

func (l *lister) Platforms(ctx context.Context, opts PlatformOptions) ([]string, error) {
	ref, err := parseReference(opts)
	if err != nil {
		return nil, err
	}

	desc, err := remote.Get(ref, buildRemoteOptionsWithAuth(ctx, opts.Username, opts.Password)...)
	if err != nil {
		return nil, classifyRegistryError(err)
	}

	if desc.MediaType.IsIndex() {
		return indexPlatforms(desc)
	}

	return imagePlatform(desc)
}

func indexPlatforms(desc *remote.Descriptor) ([]string, error) {
	index, err := desc.ImageIndex()
	if err != nil {
		return nil, fmt.Errorf("read image index: %w", err)
	}

	manifest, err := index.IndexManifest()
	if err != nil {
		return nil, fmt.Errorf("read index manifest: %w", err)
	}

	platforms := make([]string, 0, len(manifest.Manifests))

	for _, entry := range manifest.Manifests {
		// attestation manifests are published as unknown/unknown
		if entry.Platform == nil || entry.Platform.OS == "unknown" {
			continue
		}

		platforms = append(platforms, FormatPlatform(*entry.Platform))
	}

	return platforms, nil
}

func imagePlatform(desc *remote.Descriptor) ([]string, error) {
	img, err := desc.Image()
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	config, err := img.ConfigFile()
	if err != nil {
		return nil, fmt.Errorf("read image config: %w", err)
	}

	if config.OS == "" || config.Architecture == "" {
		return []string{}, nil
	}

	return []string{formatPlatform(config.OS, config.Architecture, config.Variant)}, nil
}

// FormatPlatform renders a platform as os/arch[/variant].
func FormatPlatform(platform v1.Platform) string {
	return formatPlatform(platform.OS, platform.Architecture, platform.Variant)
}

func formatPlatform(osName, arch, variant string) string {
	if variant == "" {
		return osName + "/" + arch
	}

	return osName + "/" + arch + "/" + variant
}

// parseReference normalizes the reference and parses it for the remote client.
func parseReference(opts PlatformOptions) (name.Reference, error) {
	if strings.TrimSpace(opts.Reference) == "" {
		return nil, ErrReferenceRequired
	}

	named, err := reference.ParseNormalizedNamed(opts.Reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	nameOpts := []name.Option{name.WeakValidation}
	if opts.Insecure {
		nameOpts = append(nameOpts, name.Insecure)
	}

	ref, err := name.ParseReference(reference.TagNameOnly(named).String(), nameOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	return ref, nil
}

// buildRemoteOptionsWithAuth creates remote options with optional basic auth.
func buildRemoteOptionsWithAuth(ctx context.Context, username, password string) []remote.Option {
	remoteOpts := []remote.Option{
		remote.WithContext(ctx),
	}

	if username != "" || password != "" {
		auth := &authn.Basic{
			Username: username,
			Password: password,
		}
		remoteOpts = append(remoteOpts, remote.WithAuth(auth))
	}

	return remoteOpts
}

// classifyRegistryError converts low-level registry errors to package errors.
func classifyRegistryError(err error) error {
	var transportErr *transport.Error
	if errors.As(err, &transportErr) {
		switch transportErr.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrRegistryAuthRequired, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrRegistryPermissionDenied, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrManifestNotFound, err)
		}
	}

	lowerErr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(lowerErr, "no such host"),
		strings.Contains(lowerErr, "connection refused"),
		strings.Contains(lowerErr, "dial tcp"):
		return fmt.Errorf("%w: %s", ErrRegistryUnreachable, extractErrorDetail(err.Error()))
	case strings.Contains(lowerErr, "manifest unknown"),
		strings.Contains(lowerErr, "name_unknown"),
		strings.Contains(lowerErr, "name unknown"):
		return fmt.Errorf("%w: %w", ErrManifestNotFound, err)
	default:
		return fmt.Errorf("fetch manifest: %w", err)
	}
}

// extractErrorDetail drops the leading operation prefix of an error message.
func extractErrorDetail(errStr string) string {
	if idx := strings.Index(errStr, ": "); idx > 0 {
		return errStr[idx+2:]
	}

	return errStr
}
