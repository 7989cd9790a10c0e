package docker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dev1-sg/ecrdocs/pkg/client/docker"
	"github.com/docker/docker/api/types/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnauthorized = errors.New("unauthorized: incorrect username or password")

func TestLoginReturnsEncodedAuth(t *testing.T) {
	t.Parallel()

	api := &mockAPI{}
	creds := docker.Credentials{Username: "AWS", Password: "secret", ServerAddress: "public.ecr.aws"}
	authConfig := registry.AuthConfig{Username: "AWS", Password: "secret", ServerAddress: "public.ecr.aws"}

	api.On("RegistryLogin", context.Background(), authConfig).
		Return(registry.AuthenticateOKBody{Status: "Login Succeeded"}, nil).Once()

	encoded, err := docker.Login(context.Background(), api, creds)

	require.NoError(t, err)

	want, err := registry.EncodeAuthConfig(authConfig)
	require.NoError(t, err)
	assert.Equal(t, want, encoded)
}

func TestLoginFailure(t *testing.T) {
	t.Parallel()

	api := &mockAPI{}
	creds := docker.Credentials{Username: "AWS", Password: "bad", ServerAddress: "public.ecr.aws"}

	api.On("RegistryLogin", context.Background(), registry.AuthConfig{
		Username: "AWS", Password: "bad", ServerAddress: "public.ecr.aws",
	}).Return(registry.AuthenticateOKBody{}, errUnauthorized).Once()

	_, err := docker.Login(context.Background(), api, creds)

	require.ErrorIs(t, err, docker.ErrLoginFailed)
	require.ErrorIs(t, err, errUnauthorized)
}
