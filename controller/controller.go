package controller

import (
	"context"
	"net/http"

	"relivo-backend/dal"
	_ "relivo-backend/docs"
	"relivo-backend/middelware"
	"relivo-backend/models"
	"relivo-backend/repository"
	"relivo-backend/services"
	"relivo-backend/utils/logger"
	"relivo-backend/utils/swagger"
	"relivo-backend/worker"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// Controller wires the repositories, services and workers behind the HTTP
// surface.
type Controller struct {
	Auth         *AuthController
	Organization *OrganizationController

	DB      *dal.Client
	Workers *worker.Service

	jwtManager *middelware.JWTManager
	logger     logger.Logger
}

// NewController builds the full dependency graph: database client, repos,
// mailer, background workers and both services.
func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) (*Controller, error) {
	dbclient, err := dal.NewClient(cfg, log)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(dbclient, log)
	codeRepo := repository.NewVerificationRepository(dbclient, log)
	orgRepo := repository.NewOrganizationRepository(dbclient, log)

	jwtManager := middelware.NewJWTManager(cfg, log)
	mailer := services.NewMailer(cfg, log)

	workers, err := worker.NewService(cfg, mailer, codeRepo, log)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(userRepo, codeRepo, dbclient, jwtManager, mailer, workers.Mail(), cfg, log)
	orgService := services.NewOrganizationService(orgRepo, userRepo, dbclient, mailer, workers.Mail(), cfg, log)

	return &Controller{
		Auth:         NewAuthController(authService, orgService, log),
		Organization: NewOrganizationController(orgService, log),
		DB:           dbclient,
		Workers:      workers,
		jwtManager:   jwtManager,
		logger:       log,
	}, nil
}

// RegisterRoutes mounts every endpoint and runs the HTTP server. Blocks
// until the server stops.
func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	c.MountRoutes(config, r, basePath)

	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	c.logger.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// MountRoutes attaches middleware and every route group to the engine.
func (c *Controller) MountRoutes(config *models.Config, r *gin.Engine, basePath string) {
	cors := middelware.NewCORSMiddleware(config)
	logging := middelware.NewLoggingMiddleware(c.logger)
	r.Use(cors.CORS(), logging.StructuredLogger(), logging.Recovery())

	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	// Swagger UI with authentication form
	swaggerConfig := swagger.SwaggerConfig{
		Title:         config.AppName + " API",
		SwaggerDocURL: "/swagger/doc.json",
		AuthURL:       basePath + "/auth/login",
	}
	r.GET("/swagger", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeSwaggerUI(swaggerConfig))

	// Swagger JSON spec, registered by the docs package
	r.GET("/swagger/doc.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Swagger spec not available"})
			return
		}
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, doc)
	})

	auth := v1.Group("/auth")

	// Account lifecycle - no auth required
	auth.POST("/register", c.Auth.Register)
	auth.POST("/verify", c.Auth.Verify)
	auth.POST("/resend-code", c.Auth.ResendCode)
	auth.POST("/login", c.Auth.Login)
	auth.POST("/forgot-password", c.Auth.ForgotPassword)
	auth.POST("/reset-password", c.Auth.ResetPassword)

	auth.GET("/me", c.jwtManager.AuthMiddleware(), c.Auth.Me)

	// Admin organization surface under /auth/admin
	authAdmin := auth.Group("/admin", c.jwtManager.AuthMiddleware(), c.jwtManager.AdminRequired())
	authAdmin.GET("/organizations", c.Auth.ListOrganizations)
	authAdmin.PUT("/organizations/:id/status", c.Auth.UpdateOrganizationStatus)

	orgs := v1.Group("/organizations")
	orgs.POST("/apply", c.jwtManager.AuthMiddleware(), c.Organization.Apply)
	orgs.GET("/me", c.jwtManager.AuthMiddleware(), c.Organization.GetMine)

	orgAdmin := orgs.Group("/admin", c.jwtManager.AuthMiddleware(), c.jwtManager.AdminRequired())
	orgAdmin.GET("/all", c.Organization.ListAll)
	orgAdmin.GET("/pending", c.Organization.ListPending)
	orgAdmin.POST("/:id/approve", c.Organization.Approve)
	orgAdmin.POST("/:id/reject", c.Organization.Reject)
	orgAdmin.PUT("/:id/suspend", c.Organization.Suspend)
	orgAdmin.PUT("/:id/reactivate", c.Organization.Reactivate)
}
