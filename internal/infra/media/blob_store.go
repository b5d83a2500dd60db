// Package media implements the image store on top of a gocloud blob bucket,
// so the same code serves a local directory in development and an object
// store in production by switching the bucket URL.
package media

import (
	"context"
	"io"
	"path"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver for development
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket and returns it as a service.ImageStore.
func New(params Params) (service.ImageStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Media.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the content under a collision-free key and returns its public URL.
func (s *blobImageStore) Upload(ctx context.Context, filename string, contentType string, content io.Reader) (string, error) {
	key := objectKey(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}
	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image content")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object a previously returned public URL points at.
func (s *blobImageStore) Delete(ctx context.Context, publicURL string) error {
	key, ok := strings.CutPrefix(publicURL, s.publicBaseURL+"/")
	if !ok || key == "" {
		return errors.Errorf("url %q does not belong to the media bucket", publicURL)
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete image object")
	}

	return nil
}

// objectKey derives a unique object key keeping the original extension so
// content sniffing by extension keeps working downstream.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return "products/" + uuid.NewString() + ext
}
