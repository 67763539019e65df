package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LovationAdmin/expense-api/config"
	"github.com/LovationAdmin/expense-api/events"
	"github.com/LovationAdmin/expense-api/handlers"
	"github.com/LovationAdmin/expense-api/middleware"
	"github.com/LovationAdmin/expense-api/routes"
	"github.com/LovationAdmin/expense-api/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServe(cfg, skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on startup")

	return cmd
}

func runServe(cfg *config.Config, skipMigrations bool) error {
	utils.LogStartup("expense-api", Version, cfg.Port)

	if !skipMigrations {
		if err := config.RunMigrations(cfg.DatabaseURL); err != nil {
			return err
		}
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("database connected")

	var cipher *utils.Cipher
	if cfg.DataEncryptionKey != "" {
		if cipher, err = utils.NewCipher(cfg.DataEncryptionKey); err != nil {
			return err
		}
	} else {
		slog.Warn("DATA_ENCRYPTION_KEY not set, 2FA is disabled")
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	ws := handlers.NewWSHandler(tokens)

	sinks := []events.Sink{ws}
	if cfg.AMQPURL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return err
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
		slog.Info("publishing events to broker", "exchange", cfg.AMQPExchange)
	}

	dispatcher := events.NewDispatcher(cfg.EventBufferSize, sinks...)
	dispatcher.Start()

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	done := make(chan struct{})
	go limiter.RunCleanup(done)

	router := newRouter(cfg, limiter)
	routes.Setup(router, routes.Dependencies{
		DB:      db,
		Tokens:  tokens,
		Cipher:  cipher,
		Events:  dispatcher,
		WS:      ws,
		Version: Version,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			close(done)
			dispatcher.Shutdown()
			return err
		}
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http shutdown", "error", err)
	}
	close(done)
	dispatcher.Shutdown()
	if err := ws.Close(); err != nil {
		slog.Warn("websocket hub close", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))
	router.Use(middleware.RequestLogger())
	router.Use(limiter.Middleware())

	return router
}
