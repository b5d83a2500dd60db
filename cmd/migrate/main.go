// Command migrate creates or updates the database schema with GORM
// AutoMigrate. It is meant for development and first deployment; production
// schema changes go through reviewed SQL.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bazaar/config"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	drop := flag.Bool("drop", false, "Drop managed tables before migration (data loss)")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if *drop {
		if err := dropTables(db); err != nil {
			logger.Error("Failed to drop tables", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Dropped managed tables")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.SellerModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.RefreshTokenModel{},
	); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migration completed")
}

func dropTables(db *gorm.DB) error {
	tables := []string{
		"refresh_tokens",
		"products",
		"categories",
		"accounts",
		"sellers",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			return err
		}
	}

	return nil
}
