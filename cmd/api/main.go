package main

import (
	"github.com/gin-gonic/gin"

	"taskboard/config"
	"taskboard/db"
	"taskboard/logger"
	"taskboard/middleware"
	"taskboard/routes"
)

func main() {
	config.LoadConfig()
	logger.Init(config.GinMode == gin.ReleaseMode)
	defer logger.Sync()

	db.Init()

	gin.SetMode(config.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger.L()))
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.ServerPort); err != nil {
		logger.L().Fatal("server stopped: " + err.Error())
	}
}
