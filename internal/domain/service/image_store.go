package service

import (
	"context"
	"io"
)

// ImageStore abstracts hosted image storage. Upload returns a public URL;
// deletion goes through this backend because the bucket itself accepts
// anonymous reads only.
type ImageStore interface {
	// Upload stores the content under a derived object key and returns the
	// public URL it is served from.
	Upload(ctx context.Context, filename string, contentType string, content io.Reader) (string, error)

	// Delete removes the object a previously returned URL points at.
	Delete(ctx context.Context, publicURL string) error
}
