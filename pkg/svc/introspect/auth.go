package introspect

import (
	"context"
	"fmt"

	"github.com/dev1-sg/ecrdocs/pkg/client/docker"
	"github.com/dev1-sg/ecrdocs/pkg/client/ecr"
)

// TokenSource issues registry credentials.
type TokenSource interface {
	AuthorizationCredentials(ctx context.Context) (ecr.Credentials, error)
}

// Authenticator logs the container runtime in to a registry with credentials
// from a TokenSource.
type Authenticator struct {
	tokens TokenSource
	daemon docker.RegistryLoginAPI
	server string
}

// NewAuthenticator creates an Authenticator for the registry at server.
func NewAuthenticator(tokens TokenSource, daemon docker.RegistryLoginAPI, server string) *Authenticator {
	return &Authenticator{tokens: tokens, daemon: daemon, server: server}
}

// Login fetches a registry token, logs the daemon in and returns the
// resulting Auth for pulls and registry lookups.
func (a *Authenticator) Login(ctx context.Context) (Auth, error) {
	creds, err := a.tokens.AuthorizationCredentials(ctx)
	if err != nil {
		return Auth{}, fmt.Errorf("failed to get registry credentials: %w", err)
	}

	encoded, err := docker.Login(ctx, a.daemon, docker.Credentials{
		Username:      creds.Username,
		Password:      creds.Password,
		ServerAddress: a.server,
	})
	if err != nil {
		return Auth{}, err
	}

	return Auth{Encoded: encoded, Username: creds.Username, Password: creds.Password}, nil
}
