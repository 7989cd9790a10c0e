package docker_test

import (
	"bytes"
	"context"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/mock"
)

// mockAPI is a testify double for docker.API.
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, refStr, options)

	reader, _ := args.Get(0).(io.ReadCloser)

	return reader, args.Error(1)
}

func (m *mockAPI) ImageInspect(
	ctx context.Context,
	imageID string,
	_ ...client.ImageInspectOption,
) (image.InspectResponse, error) {
	args := m.Called(ctx, imageID)

	return args.Get(0).(image.InspectResponse), args.Error(1)
}

func (m *mockAPI) ContainerCreate(
	ctx context.Context,
	config *container.Config,
	hostConfig *container.HostConfig,
	networkingConfig *network.NetworkingConfig,
	platform *ocispec.Platform,
	containerName string,
) (container.CreateResponse, error) {
	args := m.Called(ctx, config, hostConfig, networkingConfig, platform, containerName)

	return args.Get(0).(container.CreateResponse), args.Error(1)
}

func (m *mockAPI) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	return m.Called(ctx, containerID, options).Error(0)
}

func (m *mockAPI) ContainerWait(
	ctx context.Context,
	containerID string,
	condition container.WaitCondition,
) (<-chan container.WaitResponse, <-chan error) {
	args := m.Called(ctx, containerID, condition)

	return args.Get(0).(chan container.WaitResponse), args.Get(1).(chan error)
}

func (m *mockAPI) ContainerLogs(
	ctx context.Context,
	containerID string,
	options container.LogsOptions,
) (io.ReadCloser, error) {
	args := m.Called(ctx, containerID, options)

	reader, _ := args.Get(0).(io.ReadCloser)

	return reader, args.Error(1)
}

func (m *mockAPI) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	return m.Called(ctx, containerID, options).Error(0)
}

func (m *mockAPI) RegistryLogin(ctx context.Context, auth registry.AuthConfig) (registry.AuthenticateOKBody, error) {
	args := m.Called(ctx, auth)

	return args.Get(0).(registry.AuthenticateOKBody), args.Error(1)
}

func (m *mockAPI) Close() error {
	return m.Called().Error(0)
}

// multiplexed frames stdout and stderr the way the daemon does for
// non-TTY container logs.
func multiplexed(stdout, stderr string) io.ReadCloser {
	var buf bytes.Buffer

	if stdout != "" {
		_, _ = stdcopy.NewStdWriter(&buf, stdcopy.Stdout).Write([]byte(stdout))
	}

	if stderr != "" {
		_, _ = stdcopy.NewStdWriter(&buf, stdcopy.Stderr).Write([]byte(stderr))
	}

	return io.NopCloser(&buf)
}

func exited(code int64) (chan container.WaitResponse, chan error) {
	waitCh := make(chan container.WaitResponse, 1)
	waitCh <- container.WaitResponse{StatusCode: code}

	return waitCh, make(chan error, 1)
}
