package server

import (
	"fmt"
	"log/slog"
	"time"

	"student-wellness-system/config"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/logger"
	"student-wellness-system/internal/global/mailer"
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/global/redis"
	internalSentry "student-wellness-system/internal/global/sentry"
	"student-wellness-system/internal/module"
	"student-wellness-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := internalSentry.Init(); err != nil {
		log.Error("Failed to init Sentry", "error", err)
	}

	database.Init()
	redis.Init()
	mailer.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(internalSentry.Middleware())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}

	defer internalSentry.Flush(2 * time.Second)

	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
