package helper

import (
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/password"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const seedUserQuery = `
	INSERT INTO users (id, username, password, role, theme, active, created_at, created_by)
	VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), $6)
	ON CONFLICT (username) DO NOTHING`

// SeedUsers inserts the default admin and staff accounts when they do not exist yet.
func SeedUsers(cfg *config.Config) error {
	db := postgres.CreatePostgresWriteConn(*cfg)
	defer db.Close()

	seeds := []struct {
		username string
		password string
		role     string
	}{
		{username: "admin", password: cfg.Seed.AdminPassword, role: constant.RoleAdmin},
		{username: "staff", password: cfg.Seed.StaffPassword, role: constant.RoleStaff},
	}

	for _, seed := range seeds {
		hashed, err := password.Hash(seed.password)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", seed.username, err)
		}

		result, err := db.Exec(seedUserQuery, uuid.NewString(), seed.username, hashed, seed.role, constant.ThemeLight, constant.ContextSystem)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", seed.username, err)
		}

		if rows, err := result.RowsAffected(); err == nil && rows > 0 {
			log.Info().Str("username", seed.username).Str("role", seed.role).Msg("Seeded default user")
		}
	}

	return nil
}
