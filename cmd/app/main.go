package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Front Desk API
// @version 1.0
// @description Hotel front desk service covering room inventory, bookings, customers, and billing.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Runner(cfg, "up"); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	if err := helper.SeedUsers(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed default users")
	}

	http := di.InitializeService()
	http.Serve()
}
