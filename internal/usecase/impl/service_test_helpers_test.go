package impl

import (
	"io"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Invite = &config.InviteConfig{BaseURL: "https://shop.example.com"}

	return cfg
}

func ownerSession() *entity.Session {
	return &entity.Session{UserID: "1", Email: "owner@example.com", Role: entity.RoleOwner}
}

func adminSession(sellerID int64) *entity.Session {
	return &entity.Session{UserID: "2", Email: "admin@example.com", Role: entity.RoleAdmin, AdminForSellerID: &sellerID}
}

func customerSession() *entity.Session {
	return &entity.Session{UserID: "3d1f8f9e-9f5b-4a34-9a37-0c6d6a1a2b3c", Email: "customer@example.com", Role: entity.RoleCustomer}
}
