// Package client holds the clients for the services ecrdocs talks to.
//
//   - docker: image pulls, inspection and ephemeral containers on the Docker daemon
//   - ecr: repository, image and token lookups on Amazon ECR Public
//   - oci: platform listings read from image indexes over the registry API
package client
