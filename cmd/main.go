package main

import (
	"time"

	"healthtrack/config"
	"healthtrack/controllers"
	"healthtrack/routes"
	"healthtrack/services"
	"healthtrack/utils"
)

func main() {
	cfg := config.Load()
	config.InitDB(cfg)
	utils.InitS3()
	services.InitUsage(config.DB)
	services.InitViewCache(cfg.RedisAddr)
	controllers.FollowRequestTTL = time.Duration(cfg.FollowRequestTTLHours) * time.Hour

	r := routes.SetupRouter()
	r.Run(":" + cfg.Port)
}
