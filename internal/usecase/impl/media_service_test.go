package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixture struct {
	imageStore *mockService.MockImageStore
	service    usecase.MediaUsecase
}

func createTestMediaService(t *testing.T) *mediaServiceFixture {
	fx := &mediaServiceFixture{
		imageStore: mockService.NewMockImageStore(t),
	}
	fx.service = NewMediaService(MediaServiceParams{
		ImageStore: fx.imageStore,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestMediaService_UploadImage_Success(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	content := strings.NewReader("fake image bytes")

	fx.imageStore.EXPECT().
		Upload(ctx, "product.png", "image/png", content).
		Return("https://cdn.example.com/product.png", nil)

	output, err := fx.service.UploadImage(ctx, adminSession(7), &usecase.UploadImageInput{
		Filename:    "product.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/product.png", output.URL)
}

func TestMediaService_UploadImage_CustomerForbidden(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	output, err := fx.service.UploadImage(ctx, customerSession(), &usecase.UploadImageInput{
		Filename:    "product.png",
		ContentType: "image/png",
		Content:     strings.NewReader(""),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMediaService_UploadImage_StoreFailure(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	content := strings.NewReader("fake image bytes")

	fx.imageStore.EXPECT().
		Upload(ctx, "product.png", "image/png", content).
		Return("", errors.New("bucket unreachable"))

	output, err := fx.service.UploadImage(ctx, ownerSession(), &usecase.UploadImageInput{
		Filename:    "product.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMediaUploadFailed)
}

func TestMediaService_DeleteImage_Success(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	fx.imageStore.EXPECT().Delete(ctx, "https://cdn.example.com/product.png").Return(nil)

	err := fx.service.DeleteImage(ctx, ownerSession(), "https://cdn.example.com/product.png")

	require.NoError(t, err)
}

func TestMediaService_DeleteImage_CustomerForbidden(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()

	err := fx.service.DeleteImage(ctx, customerSession(), "https://cdn.example.com/product.png")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
