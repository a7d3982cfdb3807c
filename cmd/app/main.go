package main

import (
	"cowork/config"
	"cowork/di"
	"cowork/shared/logger"
)

// @title Cowork Marketplace API
// @version 1.0
// @description Workspace listings, bookings, coupons and lead capture for the coworking marketplace.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		migrate(cfg)
	}

	http := di.InitializeService()
	http.Serve()
}
