package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/pkg/auth"
)

// AdminStore is the part of the user repository the seed needs
type AdminStore interface {
	CountByRole(ctx context.Context, role appModels.RoleType) (int, error)
	Create(ctx context.Context, user *appModels.User) error
}

// AdminAccount is the administrator created on an empty installation
type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultAdmin creates the configured administrator when no admin exists yet.
// Nothing happens when no admin email is configured.
func CreateDefaultAdmin(ctx context.Context, users AdminStore, account AdminAccount, lgr zerolog.Logger) error {
	if account.Email == "" {
		lgr.Debug().Msg("No default admin configured, skipping seed")
		return nil
	}

	count, err := users.CountByRole(ctx, appModels.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int("admins", count).Msg("Admin already present, skipping seed")
		return nil
	}

	if account.Password == "" {
		return fmt.Errorf("seed admin password is required when admin email is set")
	}
	hash, err := auth.HashPassword(account.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &appModels.User{
		Name:     account.Name,
		Email:    strings.ToLower(strings.TrimSpace(account.Email)),
		Password: hash,
		Role:     appModels.RoleAdmin,
		IsActive: true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	lgr.Info().Str("email", admin.Email).Int64("userID", admin.ID).Msg("Default admin created")
	return nil
}
