package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studio-console-backend/config"
	"studio-console-backend/logger"
	"studio-console-backend/routes"
	"studio-console-backend/seed"
	"studio-console-backend/services"
	"studio-console-backend/storage"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			log.Fatal().Msg("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = utils.GenerateJWTSecret()
		log.Warn().Msg("JWT_SECRET not set, generated an ephemeral one")
	}

	var sessionStore storage.Store
	switch cfg.SessionBackend {
	case "redis":
		rs, err := storage.ConnectRedis(ctx, storage.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect session storage")
		}
		defer rs.Close()
		sessionStore = rs
	default:
		sessionStore = storage.NewMemory()
	}

	gateway := stores.NewServiceDataStore(cfg.GatewayLatency, log)
	authStore := stores.NewAuthStore(sessionStore, gateway, log)
	customerStore := stores.NewCustomerStore()
	serviceStore := stores.NewServiceStore()
	activityStore := stores.NewActivityStore()

	seed.Load(customerStore, serviceStore, activityStore)

	owner, err := seed.DemoOwner(cfg.DemoOwnerPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build demo owner account")
	}

	authStore.RestoreSession(ctx)

	reminders := services.NewReminderService(cfg.Twilio, customerStore, activityStore, log)
	reminders.StartScheduler()
	defer reminders.Stop()

	r := routes.SetupRouter(routes.Deps{
		Cfg:        cfg,
		Log:        log,
		Auth:       authStore,
		Customers:  customerStore,
		Services:   serviceStore,
		Activities: activityStore,
		Gateway:    gateway,
		Owner:      owner,
	})
	printRoutes(r)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
