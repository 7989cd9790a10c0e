package introspect

import (
	"context"
	"fmt"
	"io"

	"github.com/dev1-sg/ecrdocs/pkg/client/docker"
	"github.com/dev1-sg/ecrdocs/pkg/client/oci"
	"github.com/dev1-sg/ecrdocs/pkg/utils/notify"
	"github.com/sirupsen/logrus"
)

var (
	osReleaseCommand     = []string{"cat", "/etc/os-release"}
	envCommand           = []string{"env"}
	apkPackagesCommand   = []string{"apk", "info"}
	aptPackagesCommand   = []string{"sh", "-c", "apt list | tail -n +2"}
	localBinariesCommand = []string{"ls", "-1", "/usr/local/bin"}
)

// Runner runs one command in an ephemeral container of an image.
type Runner interface {
	Run(ctx context.Context, imageRef, arch string, cmd []string) docker.CommandResult
}

// ImageSource pulls and inspects images.
type ImageSource interface {
	Pull(ctx context.Context, imageRef, registryAuth string) error
	Inspect(ctx context.Context, imageRef string) (docker.ImageInfo, error)
}

// Introspector collects ImageFacts.
type Introspector struct {
	images    ImageSource
	runner    Runner
	platforms oci.PlatformLister
	out       io.Writer
	log       logrus.FieldLogger
}

// NewIntrospector creates an Introspector. platforms may be nil, in which
// case no platform lookup is made. Warnings are written to out.
func NewIntrospector(
	images ImageSource,
	runner Runner,
	platforms oci.PlatformLister,
	out io.Writer,
	log logrus.FieldLogger,
) *Introspector {
	return &Introspector{
		images:    images,
		runner:    runner,
		platforms: platforms,
		out:       out,
		log:       log,
	}
}

// Introspect pulls imageRef and runs the diagnostics against it.
// Pull and inspect failures are returned; diagnostic failures only degrade
// the corresponding fields.
func (i *Introspector) Introspect(ctx context.Context, imageRef string, auth Auth) (ImageFacts, error) {
	err := i.images.Pull(ctx, imageRef, auth.Encoded)
	if err != nil {
		return ImageFacts{}, err
	}

	info, err := i.images.Inspect(ctx, imageRef)
	if err != nil {
		return ImageFacts{}, fmt.Errorf("failed to inspect %s: %w", imageRef, err)
	}

	arch := info.Architecture
	osRelease := ParseKeyValue(i.diagnose(ctx, imageRef, arch, "os release", osReleaseCommand))

	return ImageFacts{
		ImageReference:   imageRef,
		ImageID:          info.ID,
		Architecture:     arch,
		OSName:           osRelease["NAME"],
		OSVersionID:      osRelease["VERSION_ID"],
		OSID:             osRelease["ID"],
		EnvironmentLines: SplitLines(i.diagnose(ctx, imageRef, arch, "environment", envCommand)),
		PackageLines:     i.Packages(ctx, imageRef, arch),
		LocalBinaries:    SplitLines(i.diagnose(ctx, imageRef, arch, "local binaries", localBinariesCommand)),
		Platforms:        i.Platforms(ctx, imageRef, auth),
	}, nil
}

// Packages lists the installed packages with apk, falling back to apt.
// When neither works a warning is written and the list is empty.
func (i *Introspector) Packages(ctx context.Context, imageRef, arch string) []string {
	result := i.runner.Run(ctx, imageRef, arch, apkPackagesCommand)

	switch result.Kind {
	case docker.Succeeded:
		return SplitLines(result.Output)
	case docker.ExitedNonZero:
		i.log.WithField("image", imageRef).Debugf("apk not usable, trying apt: %v", result.Failure())
	case docker.RuntimeFailure:
		i.log.WithField("image", imageRef).Debugf("apk run failed, trying apt: %v", result.Failure())
	}

	result = i.runner.Run(ctx, imageRef, arch, aptPackagesCommand)
	if result.Kind == docker.Succeeded {
		return SplitLines(result.Output)
	}

	notify.Warningf(i.out, "both apk and apt package listings failed for %s: %v", imageRef, result.Failure())

	return []string{}
}

// Platforms returns the platforms published for imageRef, or an empty list
// when they cannot be resolved.
func (i *Introspector) Platforms(ctx context.Context, imageRef string, auth Auth) []string {
	if i.platforms == nil {
		return []string{}
	}

	platforms, err := i.platforms.Platforms(ctx, oci.PlatformOptions{
		Reference: imageRef,
		Username:  auth.Username,
		Password:  auth.Password,
	})
	if err != nil {
		notify.Warningf(i.out, "failed to list platforms of %s: %v", imageRef, err)

		return []string{}
	}

	return platforms
}

// diagnose runs one diagnostic command and returns its output, or "" after
// writing a warning when the run fails.
func (i *Introspector) diagnose(ctx context.Context, imageRef, arch, what string, cmd []string) string {
	result := i.runner.Run(ctx, imageRef, arch, cmd)
	if !result.OK() {
		notify.Warningf(i.out, "failed to read %s of %s: %v", what, imageRef, result.Failure())

		return ""
	}

	i.log.WithFields(logrus.Fields{"image": imageRef, "command": cmd}).Debugf("command output:\n%s", result.Output)

	return result.Output
}
