package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	imageStore service.ImageStore
	logger     *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authorizeMedia restricts image management to staff sessions.
func authorizeMedia(session *entity.Session) error {
	if session.IsOwner() || session.Role == entity.RoleAdmin {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("staff only")
}

// UploadImage stores an image and returns its public URL.
func (srv *mediaService) UploadImage(ctx context.Context, session *entity.Session, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	if err := authorizeMedia(session); err != nil {
		return nil, err
	}

	url, err := srv.imageStore.Upload(ctx, input.Filename, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to upload image", slog.String("filename", input.Filename), slog.Any("error", err))

		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage("image upload failed")
	}

	srv.log(ctx).Debug("Image uploaded", slog.String("url", url))

	return &usecase.UploadImageOutput{URL: url}, nil
}

// DeleteImage removes a previously uploaded image by its public URL.
func (srv *mediaService) DeleteImage(ctx context.Context, session *entity.Session, publicURL string) error {
	if err := authorizeMedia(session); err != nil {
		return err
	}

	if err := srv.imageStore.Delete(ctx, publicURL); err != nil {
		srv.log(ctx).Error("Failed to delete image", slog.String("url", publicURL), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
