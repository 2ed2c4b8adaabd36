package main

import (
	"os"

	"chessbot/bots"
	"chessbot/config"
	"chessbot/game"
	"chessbot/gui"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := config.SetupLogging(cfg.Logs); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	session, visual, err := game.CommandLineSetup(os.Stdin, os.Stdout, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("game setup")
	}

	if visual == game.GUI {
		log.Info().Msg("starting gui...")
		if err := gui.Run(session, bots.Roster(cfg.Engine.Depth, bots.WithMobility(cfg.Engine.MobilityWeight))); err != nil {
			log.Fatal().Err(err).Msg("gui")
		}
		return
	}

	if _, err := session.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}
