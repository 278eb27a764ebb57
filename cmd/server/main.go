package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"contacts-api/internal/config"
	"contacts-api/internal/database"
	apierrors "contacts-api/internal/errors"
	"contacts-api/internal/handlers"
	"contacts-api/internal/logger"
	"contacts-api/internal/middleware"
	"contacts-api/internal/repository"
	"contacts-api/internal/services"
	"contacts-api/internal/token"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	log, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile)
	defer cleanup()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected", zap.String("driver", cfg.DBDriver))

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Token issuer, repositories, services
	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	userRepo := repository.NewUserRepository(database.GetDB())
	contactRepo := repository.NewContactRepository(database.GetDB())

	authService := services.NewAuthService(userRepo, issuer)
	contactService := services.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg)))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Contacts API is running",
		})
	})

	// Prometheus endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	v1 := r.Group("/v1")
	{
		// Auth routes (public)
		v1.POST("/register", authHandler.Register)
		v1.POST("/login", authHandler.Login)

		// Contact routes (protected)
		contacts := v1.Group("/contacts")
		contacts.Use(middleware.RequireAuth(issuer, userRepo))
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "")
	})

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if cfg.CORSOrigins == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = strings.Split(cfg.CORSOrigins, ",")
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	return c
}
