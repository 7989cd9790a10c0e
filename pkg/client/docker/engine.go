// Package docker wraps the Docker Engine API operations used to introspect
// images: pulling, inspecting, logging in and running ephemeral containers.
package docker

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Error definitions for container engine operations.
var (
	// ErrPullFailed is returned when an image cannot be pulled.
	ErrPullFailed = errors.New("image pull failed")
	// ErrImageNotFound is returned when a pulled image cannot be found locally.
	ErrImageNotFound = errors.New("image not found")
	// ErrLoginFailed is returned when the daemon rejects registry credentials.
	ErrLoginFailed = errors.New("registry login failed")
)

// API is the subset of the Docker Engine client used by this package.
type API interface {
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ImageInspect(
		ctx context.Context,
		imageID string,
		opts ...client.ImageInspectOption,
	) (image.InspectResponse, error)
	ContainerCreate(
		ctx context.Context,
		config *container.Config,
		hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig,
		platform *ocispec.Platform,
		containerName string,
	) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerWait(
		ctx context.Context,
		containerID string,
		condition container.WaitCondition,
	) (<-chan container.WaitResponse, <-chan error)
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	RegistryLogin(ctx context.Context, auth registry.AuthConfig) (registry.AuthenticateOKBody, error)
	Close() error
}

var _ API = (*client.Client)(nil)

// GetDockerClient creates a Docker client using environment configuration.
func GetDockerClient() (*client.Client, error) {
	dockerClient, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return dockerClient, nil
}
