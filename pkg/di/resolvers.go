package di

import (
	"fmt"

	"github.com/dev1-sg/ecrdocs/pkg/client/docker"
	"github.com/dev1-sg/ecrdocs/pkg/client/oci"
	"github.com/dev1-sg/ecrdocs/pkg/io/configmanager"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Dependency resolvers.

// ResolveConfig retrieves the configuration from the injector.
func ResolveConfig(injector Injector) (*configmanager.Config, error) {
	cfg, err := do.Invoke[*configmanager.Config](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve config dependency: %w", err)
	}

	return cfg, nil
}

// ResolveLogger retrieves the debug logger from the injector.
func ResolveLogger(injector Injector) (logrus.FieldLogger, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveDockerClient retrieves the Docker client from the injector.
func ResolveDockerClient(injector Injector) (docker.API, error) {
	client, err := do.Invoke[docker.API](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve docker client dependency: %w", err)
	}

	return client, nil
}

// ResolveRegistryClient retrieves the ECR Public client from the injector.
func ResolveRegistryClient(injector Injector) (RegistryClient, error) {
	client, err := do.Invoke[RegistryClient](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve registry client dependency: %w", err)
	}

	return client, nil
}

// ResolvePlatformLister retrieves the platform lister from the injector.
func ResolvePlatformLister(injector Injector) (oci.PlatformLister, error) {
	lister, err := do.Invoke[oci.PlatformLister](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve platform lister dependency: %w", err)
	}

	return lister, nil
}
