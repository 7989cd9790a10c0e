// Package ecr reads repository and image metadata from Amazon ECR Public.
package ecr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecrpublic"
	"github.com/aws/aws-sdk-go-v2/service/ecrpublic/types"
	"github.com/aws/smithy-go"
)

// Errors returned by the registry client.
var (
	// ErrRepositoryNotFound is returned when a repository does not exist.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrInvalidAuthorizationToken is returned when the token cannot be decoded.
	ErrInvalidAuthorizationToken = errors.New("invalid authorization token")
)

// API is the subset of the ECR Public client used by Registry.
type API interface {
	ecrpublic.DescribeRepositoriesAPIClient
	ecrpublic.DescribeImagesAPIClient
	GetAuthorizationToken(
		ctx context.Context,
		params *ecrpublic.GetAuthorizationTokenInput,
		optFns ...func(*ecrpublic.Options),
	) (*ecrpublic.GetAuthorizationTokenOutput, error)
}

var _ API = (*ecrpublic.Client)(nil)

// ImageDetail is the registry metadata of one image.
type ImageDetail struct {
	Tags      []string
	PushedAt  time.Time
	SizeBytes int64
}

// Credentials are the decoded registry credentials of an authorization token.
type Credentials struct {
	Username string
	Password string
}

// Registry wraps an ECR Public API client.
type Registry struct {
	api API
}

// NewRegistry creates a Registry over an existing API client.
func NewRegistry(api API) *Registry {
	return &Registry{api: api}
}

// NewClient creates an ECR Public client for region using the default AWS
// credential chain. endpoint overrides the service endpoint when not empty.
func NewClient(ctx context.Context, region, endpoint string) (*ecrpublic.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS configuration: %w", err)
	}

	return ecrpublic.NewFromConfig(cfg, func(o *ecrpublic.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// ListRepositories returns the names of all repositories starting with prefix,
// across all result pages, in API order.
func (r *Registry) ListRepositories(ctx context.Context, prefix string) ([]string, error) {
	paginator := ecrpublic.NewDescribeRepositoriesPaginator(r.api, &ecrpublic.DescribeRepositoriesInput{})

	var names []string

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list repositories: %w", classify(err))
		}

		for _, repo := range page.Repositories {
			name := aws.ToString(repo.RepositoryName)
			if strings.HasPrefix(name, prefix) {
				names = append(names, name)
			}
		}
	}

	return names, nil
}

// DescribeImages returns every image of a repository across all result pages.
// A missing repository yields an error wrapping ErrRepositoryNotFound.
func (r *Registry) DescribeImages(ctx context.Context, repository string) ([]ImageDetail, error) {
	paginator := ecrpublic.NewDescribeImagesPaginator(r.api, &ecrpublic.DescribeImagesInput{
		RepositoryName: aws.String(repository),
	})

	var images []ImageDetail

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe images of %s: %w", repository, classify(err))
		}

		for _, detail := range page.ImageDetails {
			images = append(images, ImageDetail{
				Tags:      detail.ImageTags,
				PushedAt:  aws.ToTime(detail.ImagePushedAt),
				SizeBytes: aws.ToInt64(detail.ImageSizeInBytes),
			})
		}
	}

	return images, nil
}

// AuthorizationCredentials fetches an authorization token and decodes it into
// the user name and password expected by docker login.
func (r *Registry) AuthorizationCredentials(ctx context.Context) (Credentials, error) {
	out, err := r.api.GetAuthorizationToken(ctx, &ecrpublic.GetAuthorizationTokenInput{})
	if err != nil {
		return Credentials{}, fmt.Errorf("get authorization token: %w", classify(err))
	}

	if out.AuthorizationData == nil || out.AuthorizationData.AuthorizationToken == nil {
		return Credentials{}, fmt.Errorf("%w: empty response", ErrInvalidAuthorizationToken)
	}

	return decodeToken(*out.AuthorizationData.AuthorizationToken)
}

func decodeToken(token string) (Credentials, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrInvalidAuthorizationToken, err)
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return Credentials{}, fmt.Errorf("%w: missing separator", ErrInvalidAuthorizationToken)
	}

	return Credentials{Username: username, Password: password}, nil
}

// classify maps service errors onto package errors, keeping the API error
// code in the message for everything else.
func classify(err error) error {
	var notFound *types.RepositoryNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %w", ErrRepositoryNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", apiErr.ErrorCode(), err)
	}

	return err
}
