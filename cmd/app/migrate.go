package main

import (
	"cowork/config"
	"cowork/helper"

	"github.com/rs/zerolog/log"
)

func migrate(cfg *config.Config) {
	if err := helper.Up(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}
}
