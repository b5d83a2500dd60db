package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inviteServiceFixture struct {
	sellerRepo *mockRepo.MockSellerRepository
	qrService  *mockService.MockQRCodeService
	service    usecase.InviteUsecase
}

func createTestInviteService(t *testing.T) *inviteServiceFixture {
	fx := &inviteServiceFixture{
		sellerRepo: mockRepo.NewMockSellerRepository(t),
		qrService:  mockService.NewMockQRCodeService(t),
	}
	fx.service = NewInviteService(InviteServiceParams{
		SellerRepo: fx.sellerRepo,
		QRService:  fx.qrService,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestInviteService_GenerateInviteLink_Success(t *testing.T) {
	fx := createTestInviteService(t)
	ctx := context.Background()

	seller := &entity.Seller{ID: 7, Verified: true}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.sellerRepo.EXPECT().FindByID(ctx, int64(7)).Return(seller, nil)
	fx.qrService.EXPECT().
		GenerateInviteQR("https://shop.example.com/signup?seller=7").
		Return(png, nil)

	output, err := fx.service.GenerateInviteLink(ctx, adminSession(7), 7)

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/signup?seller=7", output.Link)
	assert.Equal(t, png, output.QRPNG)
}

func TestInviteService_GenerateInviteLink_TrimsTrailingSlash(t *testing.T) {
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	qrService := mockService.NewMockQRCodeService(t)
	cfg := newTestConfig()
	cfg.Invite.BaseURL = "https://shop.example.com/"
	service := NewInviteService(InviteServiceParams{
		SellerRepo: sellerRepo,
		QRService:  qrService,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	})

	ctx := context.Background()
	seller := &entity.Seller{ID: 7, Verified: true}

	sellerRepo.EXPECT().FindByID(ctx, int64(7)).Return(seller, nil)
	qrService.EXPECT().
		GenerateInviteQR("https://shop.example.com/signup?seller=7").
		Return([]byte{1}, nil)

	output, err := service.GenerateInviteLink(ctx, ownerSession(), 7)

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/signup?seller=7", output.Link)
}

func TestInviteService_GenerateInviteLink_UnverifiedSeller(t *testing.T) {
	fx := createTestInviteService(t)
	ctx := context.Background()

	seller := &entity.Seller{ID: 7}

	fx.sellerRepo.EXPECT().FindByID(ctx, int64(7)).Return(seller, nil)

	output, err := fx.service.GenerateInviteLink(ctx, ownerSession(), 7)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInviteService_GenerateInviteLink_ForeignAdminForbidden(t *testing.T) {
	fx := createTestInviteService(t)
	ctx := context.Background()

	output, err := fx.service.GenerateInviteLink(ctx, adminSession(8), 7)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInviteService_GenerateInviteLink_SellerNotFound(t *testing.T) {
	fx := createTestInviteService(t)
	ctx := context.Background()

	fx.sellerRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrSellerNotFound)

	output, err := fx.service.GenerateInviteLink(ctx, ownerSession(), 99)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}
