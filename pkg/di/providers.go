package di

import (
	"context"

	"github.com/dev1-sg/ecrdocs/pkg/client/docker"
	"github.com/dev1-sg/ecrdocs/pkg/client/ecr"
	"github.com/dev1-sg/ecrdocs/pkg/client/oci"
	"github.com/dev1-sg/ecrdocs/pkg/io/configmanager"
	"github.com/dev1-sg/ecrdocs/pkg/svc/catalog"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// RegistryClient is the ECR Public surface used by the commands.
type RegistryClient interface {
	catalog.Registry
	AuthorizationCredentials(ctx context.Context) (ecr.Credentials, error)
}

var _ RegistryClient = (*ecr.Registry)(nil)

// Dependency providers.

// NewRuntime constructs the runtime used by the root command. The Docker
// client, ECR Public client and platform lister are created lazily, so a
// command only connects to what it resolves.
func NewRuntime() *Runtime {
	return New(
		provideDockerClient,
		provideRegistryClient,
		providePlatformLister,
	)
}

// ProvideConfig registers the resolved configuration.
func ProvideConfig(cfg *configmanager.Config) Module {
	return func(i Injector) error {
		do.ProvideValue(i, cfg)

		return nil
	}
}

// ProvideLogger registers the debug logger.
func ProvideLogger(logger logrus.FieldLogger) Module {
	return func(i Injector) error {
		do.ProvideValue(i, logger)

		return nil
	}
}

// closingClient closes the Docker client when the injector shuts down.
type closingClient struct {
	docker.API
}

func (c closingClient) Shutdown() error {
	return c.Close()
}

func provideDockerClient(i Injector) error {
	do.Provide(i, func(Injector) (docker.API, error) {
		dockerClient, err := docker.GetDockerClient()
		if err != nil {
			return nil, err
		}

		return closingClient{API: dockerClient}, nil
	})

	return nil
}

func provideRegistryClient(i Injector) error {
	do.Provide(i, func(injector Injector) (RegistryClient, error) {
		cfg, err := ResolveConfig(injector)
		if err != nil {
			return nil, err
		}

		client, err := ecr.NewClient(context.Background(), cfg.Region, cfg.Endpoint())
		if err != nil {
			return nil, err
		}

		return ecr.NewRegistry(client), nil
	})

	return nil
}

func providePlatformLister(i Injector) error {
	do.Provide(i, func(Injector) (oci.PlatformLister, error) {
		return oci.NewPlatformLister(), nil
	})

	return nil
}
