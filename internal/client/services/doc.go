// Package services contains the typed facades over the sales backend REST API.
//
// Each service is a thin wrapper over a Requester (implemented by
// client.HTTPClient): it builds the resource path, sends the payload and
// decodes the response. Business validation is the server's job; errors from
// the Requester are returned unchanged so callers can match them with
// errors.Is against the client sentinels.
package services

import "context"

// Requester is the transport the services need.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string, out any) error
	Download(ctx context.Context, path string) ([]byte, error)
}
