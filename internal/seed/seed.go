package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/scholarstream/scholarstream/internal/app/models"
	appRepos "github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/config"
)

// CreateDefaultData ensures a bootstrap admin account exists so role
// management endpoints are reachable on a fresh database.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminEmail := config.GetEnv("ADMIN_EMAIL", "")
	if adminEmail == "" {
		lgr.Info().Msg("ADMIN_EMAIL not set, skipping default admin creation")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	admin := &appModels.User{
		Email:       adminEmail,
		DisplayName: config.GetEnv("ADMIN_NAME", "Platform Admin"),
		Role:        appModels.RoleAdmin,
		CreatedAt:   time.Now(),
	}

	_, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		if errors.Is(err, appRepos.ErrUserAlreadyExists) {
			lgr.Debug().Str("email", adminEmail).Msg("Default admin already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("email", adminEmail).Msg("Default admin created")
	return nil
}
