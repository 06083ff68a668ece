package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"connectoradminapi/bootstrap"
	"connectoradminapi/config"
	"connectoradminapi/controllers"
	_ "connectoradminapi/docs"
	"connectoradminapi/pkg/logger"
	"connectoradminapi/repository"
	"connectoradminapi/services"
	"connectoradminapi/services/agent"
	"connectoradminapi/services/calendar"
	"connectoradminapi/services/session"
	"connectoradminapi/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           connectoradminapi
// @version         1.0
// @description     Connector Administration API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Connect databases (GORM)
	dbs, err := config.ConnectDatabases()
	if err != nil {
		log.Fatalf("ConnectDatabases error: %v", err)
	}

	if err := bootstrap.VerifyDatabases(dbs); err != nil {
		log.Fatalf("Database verification error: %v", err)
	}

	baseRepo := repository.NewBaseRepository(dbs.Sync)
	licenseRepo := repository.NewLicenseRepository(dbs.Auth)
	planningRepo := repository.NewPlanningRepository(dbs.Sync)
	historyRepo := repository.NewHistoryRepository(dbs.History)
	queueRepo := repository.NewQueueRepository(dbs.Queue)

	controllers.SetSessionService(session.NewSessionService(licenseRepo, planningRepo))
	controllers.SetConfigService(services.NewConfigService(licenseRepo))
	controllers.SetPlanningService(services.NewPlanningService(baseRepo, planningRepo))
	controllers.SetHistoryService(services.NewHistoryService(historyRepo, queueRepo))
	controllers.SetAgentSyncService(agent.NewSyncService(queueRepo))
	controllers.SetGoogleService(calendar.NewGoogleService())

	// 3) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting Connector Administration API with log level: %s", config.Cfg.LogLevel)

	// 4) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	store := cookie.NewStore([]byte(config.Cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.Cfg.SessionMaxAge,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("connectoradmin", store))

	v1 := router.Group("/api")
	{
		controllers.RegisterAuthRoutes(v1)

		protected := v1.Group("", controllers.RequireLicense())
		{
			controllers.RegisterDatabaseConfigRoutes(protected)
			controllers.RegisterSyncDataRoutes(protected)
			controllers.RegisterTerminalRoutes(protected)
			controllers.RegisterPlanningRoutes(protected)
			controllers.RegisterHistoryRoutes(protected)
			controllers.RegisterSyncRoutes(protected)
			controllers.RegisterCalendarRoutes(protected)
		}
	}

	// 5) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 6) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, closing database connections...")
		dbs.Close()
		logger.Infof("Application shutdown complete")
		os.Exit(0)
	}()

	// 7) Run
	port := config.Cfg.Port
	logger.Infof("Starting server at port %s", port)
	router.Run("0.0.0.0:" + port)
}
