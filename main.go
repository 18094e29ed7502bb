package main

import (
	"context"
	"flag"
	"log"

	"relivo-backend/controller"
	"relivo-backend/dal"
	"relivo-backend/infrastructure"
	"relivo-backend/models"
	"relivo-backend/utils"
	"relivo-backend/utils/logger"

	_ "relivo-backend/docs"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// runMigrations bootstraps the schema and exits. Safe to re-run: existing
// tables and columns are left alone.
func runMigrations(ctx context.Context, cfg *models.Config, lg logger.Logger) {
	client, err := dal.NewClient(cfg, lg)
	if err != nil {
		lg.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Close()

	schema := infrastructure.NewSchema(client, lg)
	if err := schema.Setup(ctx); err != nil {
		lg.Fatalf("Migration failed: %v", err)
	}
	lg.Info("Migrations completed successfully")
}

// @title Relivo Admin Backend API
// @version 1.0
// @description Registration, email verification, login and the organization approval workflow for the Relivo grant platform.
// @description
// @description ## Authentication flow
// @description 1. **POST /auth/register** creates an unverified account and emails a 6-digit code
// @description 2. **POST /auth/verify** consumes the code and returns a bearer token
// @description 3. **POST /auth/login** authenticates a verified account
// @description
// @description Use the **Authorize** button and the embedded login form to apply the bearer token to all calls.

// @contact.name Relivo Support
// @contact.email support@relivo.org

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token.
func main() {
	migrate := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	Init()

	lg := logger.NewLogger(config.LogLevel, config.LogFormat)
	lg.Debugf("Config loaded: %s", utils.PrintPrettyJSON(config))
	ctx := context.Background()

	if *migrate {
		runMigrations(ctx, config, lg)
		return
	}

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	c, err := controller.NewController(ctx, config, lg)
	if err != nil {
		lg.Fatalf("Failed to initialize controller: %v", err)
	}

	// Start server (this is blocking)
	go func() {
		if err := c.RegisterRoutes(ctx, config, r, config.BasePath); err != nil {
			lg.Fatalf("Server stopped: %v", err)
		}
	}()

	c.Workers.StartInBackground()

	// Keep main goroutine alive
	select {}
}
