package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/registry"
)

// Credentials identify a user on a registry server.
type Credentials struct {
	Username      string
	Password      string
	ServerAddress string
}

// RegistryLoginAPI is the part of API needed to log in.
type RegistryLoginAPI interface {
	RegistryLogin(ctx context.Context, auth registry.AuthConfig) (registry.AuthenticateOKBody, error)
}

// Login validates the credentials against the daemon and returns the encoded
// auth value to pass to subsequent pulls.
func Login(ctx context.Context, client RegistryLoginAPI, creds Credentials) (string, error) {
	authConfig := registry.AuthConfig{
		Username:      creds.Username,
		Password:      creds.Password,
		ServerAddress: creds.ServerAddress,
	}

	_, err := client.RegistryLogin(ctx, authConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLoginFailed, creds.ServerAddress, err)
	}

	encoded, err := registry.EncodeAuthConfig(authConfig)
	if err != nil {
		return "", fmt.Errorf("encode registry auth: %w", err)
	}

	return encoded, nil
}
