package usecase

import (
	"context"
	"io"

	"bazaar/internal/domain/entity"
)

// UploadImageInput carries one image upload.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadImageOutput returns the public URL of the stored image.
type UploadImageOutput struct {
	URL string
}

// MediaUsecase handles product image storage for seller admins.
type MediaUsecase interface {
	// UploadImage stores an image and returns its public URL.
	UploadImage(ctx context.Context, session *entity.Session, input *UploadImageInput) (*UploadImageOutput, error)

	// DeleteImage removes a previously uploaded image by its public URL.
	DeleteImage(ctx context.Context, session *entity.Session, publicURL string) error
}
