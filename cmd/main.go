package main

import (
	"log"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/routes"
	"github.com/Rishikeshkrishna20/Fitness/services"
	"github.com/Rishikeshkrishna20/Fitness/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	config.InitDB()
	if err := config.InitRedis(); err != nil {
		config.Logger.Warnw("redis unavailable, dashboard cache disabled", "err", err)
	}
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	services.InitDashboardHub(hub)

	push, err := services.NewPushService(config.DB)
	if err != nil {
		config.Logger.Warnw("push service unavailable", "err", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	r := routes.SetupRouter(hub, push)
	if err := r.Run(":8080"); err != nil {
		config.Logger.Fatalw("server exited", "err", err)
	}
}
