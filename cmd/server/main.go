package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omayconaguiar/url-shortner/internal/config"
	"github.com/omayconaguiar/url-shortner/internal/handler"
	"github.com/omayconaguiar/url-shortner/internal/mq"
	"github.com/omayconaguiar/url-shortner/internal/repository"
	"github.com/omayconaguiar/url-shortner/internal/service"
	"github.com/omayconaguiar/url-shortner/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title URL Shortener API
// @version 1.0
// @description A URL shortening service with visit analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize services
	linkSvc := service.NewLinkService(mysqlRepo, redisRepo, cfg.Server.Domain)

	// Initialize MQ producer (optional, nil when unconfigured)
	var producer mq.ProducerInterface
	if cfg.RocketMQ.NameServer != "" {
		p, err := mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			producer = p
			defer p.Close()
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	secret := cfg.Auth.JWTSecret

	// API v1 routes
	linkHandler := handler.NewLinkHandler(linkSvc)
	v1 := router.Group("/api/v1")
	urls := v1.Group("/urls")
	{
		urls.POST("", middleware.OptionalAuth(secret), linkHandler.Create)
		urls.GET("", middleware.RequireAuth(secret), linkHandler.FindAll)
		urls.GET("/all", linkHandler.FindAllPublic)
		urls.GET("/dashboard", middleware.RequireAuth(secret), linkHandler.Dashboard)
		urls.GET("/:id/stats", middleware.OptionalAuth(secret), linkHandler.Stats)
		urls.PATCH("/:id", middleware.OptionalAuth(secret), linkHandler.Update)
		urls.DELETE("/:id", middleware.OptionalAuth(secret), linkHandler.Remove)
	}

	// Redirect handler (slugs)
	redirectHandler := handler.NewRedirectHandler(linkSvc, producer)
	router.GET("/:slug", redirectHandler.Redirect)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware configures CORS for the frontend
func corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(corsConfig)
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
