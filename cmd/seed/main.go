package main

import (
	"taskboard/config"
	"taskboard/db"
	"taskboard/logger"
	"taskboard/seed"
)

func main() {
	config.LoadConfig()
	logger.Init(false)
	defer logger.Sync()

	db.Init()

	if err := seed.Run(db.DB, logger.L()); err != nil {
		logger.L().Fatal("seed failed: " + err.Error())
	}
	logger.L().Info("seed complete")
}
