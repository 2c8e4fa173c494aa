// Command seed creates the schema and the initial administrator account.
// Safe to run repeatedly: an existing admin email is left untouched.
package main

import (
	"context"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"store-ratings/internal/core/config"
	"store-ratings/internal/core/database"
	"store-ratings/internal/core/logger"
	"store-ratings/internal/domain"
	"store-ratings/internal/repo"
	"store-ratings/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(domain.Models()...); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}
	log.Info("schema created")

	if cfg.Seed.AdminEmail == "" {
		log.Info("no admin account configured, done")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := repo.NewUserRepo(db)
	existing, err := users.FindByEmail(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		log.Fatal("admin lookup failed", zap.Error(err))
	}
	if existing != nil {
		log.Info("admin account already present", zap.String("email", cfg.Seed.AdminEmail))
		return
	}

	admin := &domain.User{
		Name:         cfg.Seed.AdminName,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: utils.HashPassword(cfg.Seed.AdminPassword),
		Role:         domain.RoleAdmin,
	}
	if cfg.Seed.AdminAddress != "" {
		addr := cfg.Seed.AdminAddress
		admin.Address = &addr
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("admin create failed", zap.Error(err))
	}
	log.Info("admin account created",
		zap.Uint("id", admin.ID),
		zap.String("email", admin.Email),
	)
}
