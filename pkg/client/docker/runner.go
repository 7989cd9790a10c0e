package docker

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/sirupsen/logrus"
)

// unknownArch is reported by the daemon when an image has no architecture.
const unknownArch = "unknown"

// ContainerRunner runs single commands in ephemeral containers.
type ContainerRunner struct {
	client  API
	timeout time.Duration
	log     logrus.FieldLogger
}

// NewContainerRunner creates a runner. A zero timeout disables the per-run deadline.
func NewContainerRunner(client API, timeout time.Duration, log logrus.FieldLogger) *ContainerRunner {
	return &ContainerRunner{
		client:  client,
		timeout: timeout,
		log:     log,
	}
}

// Run creates a container from imageRef for linux/arch, runs cmd, captures
// its output and removes the container. It never returns an error; failures
// are reported through the result kind.
func (r *ContainerRunner) Run(ctx context.Context, imageRef, arch string, cmd []string) CommandResult {
	r.log.Debugf("running command %q on image %s with arch %s", cmd, imageRef, arch)

	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	created, err := r.client.ContainerCreate(
		ctx,
		&container.Config{
			Image:        imageRef,
			Cmd:          cmd,
			AttachStdout: true,
			AttachStderr: true,
		},
		&container.HostConfig{},
		nil,
		platformFor(arch),
		"",
	)
	if err != nil {
		return runtimeFailure(fmt.Errorf("create container: %w", err))
	}

	defer r.remove(ctx, created.ID)

	waitCh, waitErrCh := r.client.ContainerWait(ctx, created.ID, container.WaitConditionNextExit)

	err = r.client.ContainerStart(ctx, created.ID, container.StartOptions{})
	if err != nil {
		return runtimeFailure(fmt.Errorf("start container: %w", err))
	}

	var exitCode int64

	select {
	case resp := <-waitCh:
		if resp.Error != nil {
			return runtimeFailure(fmt.Errorf("wait for container: %s", resp.Error.Message))
		}

		exitCode = resp.StatusCode
	case err = <-waitErrCh:
		return runtimeFailure(fmt.Errorf("wait for container: %w", err))
	}

	stdout, stderr, err := r.readLogs(ctx, created.ID)
	if err != nil {
		return runtimeFailure(err)
	}

	if exitCode != 0 {
		r.log.Debugf("command %q exited with code %d: %s", cmd, exitCode, stderr)

		return CommandResult{
			Kind:     ExitedNonZero,
			Output:   stdout,
			Stderr:   stderr,
			ExitCode: exitCode,
		}
	}

	r.log.Debugf("command output:\n%s", stdout)

	return CommandResult{Kind: Succeeded, Output: stdout, Stderr: stderr}
}

func (r *ContainerRunner) readLogs(ctx context.Context, containerID string) (string, string, error) {
	logs, err := r.client.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		return "", "", fmt.Errorf("read container logs: %w", err)
	}

	defer func() { _ = logs.Close() }()

	var stdout, stderr bytes.Buffer

	_, err = stdcopy.StdCopy(&stdout, &stderr, logs)
	if err != nil {
		return "", "", fmt.Errorf("demultiplex container logs: %w", err)
	}

	return stdout.String(), stderr.String(), nil
}

// remove deletes the container even when ctx has been cancelled.
func (r *ContainerRunner) remove(ctx context.Context, containerID string) {
	err := r.client.ContainerRemove(context.WithoutCancel(ctx), containerID, container.RemoveOptions{
		Force: true,
	})
	if err != nil {
		r.log.Warnf("failed to remove container %s: %v", containerID, err)
	}
}

func platformFor(arch string) *ocispec.Platform {
	if arch == "" || arch == unknownArch {
		return nil
	}

	return &ocispec.Platform{OS: "linux", Architecture: arch}
}

func runtimeFailure(err error) CommandResult {
	return CommandResult{Kind: RuntimeFailure, Err: err}
}
