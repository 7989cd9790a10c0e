package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dev1-sg/ecrdocs/pkg/client/docker"
	"github.com/dev1-sg/ecrdocs/pkg/client/ecr"
	"github.com/dev1-sg/ecrdocs/pkg/client/oci"
	"github.com/dev1-sg/ecrdocs/pkg/di"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/samber/do/v2"
)

var (
	errPullDenied   = errors.New("pull access denied")
	errNoToken      = errors.New("ExpiredTokenException")
	errListingFails = errors.New("AccessDeniedException")
)

// fakeRegistry serves repositories and images from memory.
type fakeRegistry struct {
	repositories []string
	images       map[string][]ecr.ImageDetail
	listErr      error
	tokenErr     error
}

func (f *fakeRegistry) ListRepositories(_ context.Context, prefix string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var names []string

	for _, name := range f.repositories {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	return names, nil
}

func (f *fakeRegistry) DescribeImages(_ context.Context, repository string) ([]ecr.ImageDetail, error) {
	return f.images[repository], nil
}

func (f *fakeRegistry) AuthorizationCredentials(context.Context) (ecr.Credentials, error) {
	if f.tokenErr != nil {
		return ecr.Credentials{}, f.tokenErr
	}

	return ecr.Credentials{Username: "AWS", Password: "secret"}, nil
}

// fakeDocker pulls every image not named "broken" and answers diagnostic
// commands with the output of an alpine image.
type fakeDocker struct {
	mu       sync.Mutex
	pulls    []image.PullOptions
	pulled   []string
	logins   int
	commands map[string][]string
}

//nolint:gochecknoglobals // canned diagnostic output
var alpineOutput = map[string]string{
	"cat /etc/os-release":  "NAME=\"Alpine Linux\"\nID=alpine\nVERSION_ID=3.20.0\n",
	"env":                  "PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin\nHOSTNAME=fake\n",
	"apk info":             "musl\nbusybox\n",
	"ls -1 /usr/local/bin": "entrypoint.sh\n",
}

func newFakeDocker() *fakeDocker {
	return &fakeDocker{commands: map[string][]string{}}
}

func (f *fakeDocker) ImagePull(_ context.Context, ref string, options image.PullOptions) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pulled = append(f.pulled, ref)
	f.pulls = append(f.pulls, options)

	if strings.Contains(ref, "/broken:") {
		return nil, errPullDenied
	}

	return io.NopCloser(strings.NewReader(`{"status":"Pull complete","id":"layer"}` + "\n")), nil
}

func (f *fakeDocker) ImageInspect(
	_ context.Context,
	_ string,
	_ ...client.ImageInspectOption,
) (image.InspectResponse, error) {
	return image.InspectResponse{ID: "sha256:feedface", Architecture: "amd64"}, nil
}

func (f *fakeDocker) ContainerCreate(
	_ context.Context,
	config *container.Config,
	_ *container.HostConfig,
	_ *network.NetworkingConfig,
	_ *ocispec.Platform,
	_ string,
) (container.CreateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := fmt.Sprintf("container-%d", len(f.commands))
	f.commands[id] = config.Cmd

	return container.CreateResponse{ID: id}, nil
}

func (f *fakeDocker) ContainerStart(context.Context, string, container.StartOptions) error {
	return nil
}

func (f *fakeDocker) ContainerWait(
	context.Context,
	string,
	container.WaitCondition,
) (<-chan container.WaitResponse, <-chan error) {
	waitCh := make(chan container.WaitResponse, 1)
	waitCh <- container.WaitResponse{StatusCode: 0}

	return waitCh, make(chan error)
}

func (f *fakeDocker) ContainerLogs(_ context.Context, id string, _ container.LogsOptions) (io.ReadCloser, error) {
	f.mu.Lock()
	output := alpineOutput[strings.Join(f.commands[id], " ")]
	f.mu.Unlock()

	var buf bytes.Buffer

	if output != "" {
		_, _ = stdcopy.NewStdWriter(&buf, stdcopy.Stdout).Write([]byte(output))
	}

	return io.NopCloser(&buf), nil
}

func (f *fakeDocker) ContainerRemove(context.Context, string, container.RemoveOptions) error {
	return nil
}

func (f *fakeDocker) RegistryLogin(context.Context, registry.AuthConfig) (registry.AuthenticateOKBody, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logins++

	return registry.AuthenticateOKBody{Status: "Login Succeeded"}, nil
}

func (f *fakeDocker) Close() error {
	return nil
}

type fakePlatforms struct{}

func (fakePlatforms) Platforms(context.Context, oci.PlatformOptions) ([]string, error) {
	return []string{"linux/amd64", "linux/arm64/v8"}, nil
}

func withRegistry(registryClient di.RegistryClient) di.Module {
	return func(injector di.Injector) error {
		do.ProvideValue(injector, registryClient)

		return nil
	}
}

func withDocker(api docker.API) di.Module {
	return func(injector di.Injector) error {
		do.ProvideValue(injector, api)

		return nil
	}
}

func withPlatforms(lister oci.PlatformLister) di.Module {
	return func(injector di.Injector) error {
		do.ProvideValue(injector, lister)

		return nil
	}
}

func pushedAt(minutes int) time.Time {
	return time.Date(2026, time.January, 1, 12, minutes, 0, 0, time.UTC)
}
