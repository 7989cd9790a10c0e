package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/sirupsen/logrus"
)

// ImageInfo is the image metadata needed to introspect an image.
type ImageInfo struct {
	ID           string
	Architecture string
	RepoDigests  []string
}

// ImageManager pulls and inspects images.
type ImageManager struct {
	client API
	log    logrus.FieldLogger
}

// NewImageManager creates an image manager.
func NewImageManager(client API, log logrus.FieldLogger) *ImageManager {
	return &ImageManager{client: client, log: log}
}

// Pull pulls imageRef. registryAuth is the base64 encoded credential header
// value and may be empty for anonymous pulls. Progress messages are logged
// at debug level only.
func (m *ImageManager) Pull(ctx context.Context, imageRef, registryAuth string) error {
	m.log.Debugf("pulling image: %s", imageRef)

	reader, err := m.client.ImagePull(ctx, imageRef, image.PullOptions{RegistryAuth: registryAuth})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPullFailed, imageRef, err)
	}

	defer func() { _ = reader.Close() }()

	decoder := json.NewDecoder(reader)

	for {
		var msg jsonmessage.JSONMessage

		err = decoder.Decode(&msg)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("%w: %s: read pull output: %w", ErrPullFailed, imageRef, err)
		}

		if msg.Error != nil {
			return fmt.Errorf("%w: %s: %s", ErrPullFailed, imageRef, msg.Error.Message)
		}

		m.logProgress(msg)
	}

	m.log.Debugf("pull complete: %s", imageRef)

	return nil
}

// Inspect returns the ID and architecture of a local image.
// Architecture is "unknown" when the image does not declare one.
func (m *ImageManager) Inspect(ctx context.Context, imageRef string) (ImageInfo, error) {
	resp, err := m.client.ImageInspect(ctx, imageRef)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return ImageInfo{}, fmt.Errorf("%w: %s", ErrImageNotFound, imageRef)
		}

		return ImageInfo{}, fmt.Errorf("inspect image %s: %w", imageRef, err)
	}

	arch := resp.Architecture
	if arch == "" {
		arch = unknownArch
	}

	m.log.Debugf("image architecture: %s", arch)

	return ImageInfo{
		ID:           resp.ID,
		Architecture: arch,
		RepoDigests:  resp.RepoDigests,
	}, nil
}

func (m *ImageManager) logProgress(msg jsonmessage.JSONMessage) {
	if msg.Status == "" {
		return
	}

	line := "[pull] " + msg.Status
	if msg.ID != "" {
		line = "[pull] " + msg.ID + ": " + msg.Status
	}

	if msg.Progress != nil {
		if progress := msg.Progress.String(); progress != "" {
			line += " " + progress
		}
	}

	m.log.Debug(line)
}
