package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inviteService implements the InviteUsecase interface.
type inviteService struct {
	sellerRepo repository.SellerRepository
	qrService  service.QRCodeService
	baseURL    string
	logger     *slog.Logger
}

// InviteServiceParams holds dependencies for inviteService, injected by Fx.
type InviteServiceParams struct {
	fx.In

	SellerRepo repository.SellerRepository
	QRService  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewInviteService is the constructor for inviteService.
func NewInviteService(params InviteServiceParams) usecase.InviteUsecase {
	baseURL := ""
	if params.Config.Invite != nil {
		baseURL = strings.TrimRight(params.Config.Invite.BaseURL, "/")
	}

	return &inviteService{
		sellerRepo: params.SellerRepo,
		qrService:  params.QRService,
		baseURL:    baseURL,
		logger:     params.Logger,
	}
}

func (srv *inviteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateInviteLink builds the seller's invite link and renders it as a QR
// code. Customers signing up through the link are attached to the seller.
func (srv *inviteService) GenerateInviteLink(ctx context.Context, session *entity.Session, sellerID int64) (*usecase.InviteLinkOutput, error) {
	if !session.IsOwner() && !session.AdminOf(sellerID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not an admin of this seller")
	}

	seller, err := srv.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller for invite")
	}
	if !seller.Verified {
		return nil, domainerrors.ErrForbidden.WrapMessage("seller is not verified")
	}

	link := fmt.Sprintf("%s/signup?seller=%d", srv.baseURL, seller.ID)

	qrPNG, err := srv.qrService.GenerateInviteQR(link)
	if err != nil {
		srv.log(ctx).Error("Failed to render invite QR", slog.Int64("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render invite QR")
	}

	return &usecase.InviteLinkOutput{
		Link:  link,
		QRPNG: qrPNG,
	}, nil
}
