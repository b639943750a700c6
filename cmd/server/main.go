package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/api"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/config"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/analyzer"
	awsconfig "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/config"
	awscostexplorer "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/costexplorer"
	awsprovider "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/provider"
	awssts "github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/aws/sts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// The provider handle is built once here and injected everywhere.
	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.DefaultRegion, cfg.Profile)
	if err != nil {
		logger.Error("failed to load AWS configuration", "error", err)
		os.Exit(1)
	}

	costService := awscostexplorer.NewService(awsCfg)
	stsService := awssts.NewService(awsCfg)
	providerFactory := awsprovider.NewFactory(cfgService, cfg.Profile)

	analyzerService := analyzer.NewService(costService, stsService, providerFactory, logger)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api").Subrouter()
	handler := api.NewHandler(analyzerService, cfg)
	api.SetupRoutes(apiRouter, handler)

	router.Use(api.LoggingMiddleware(logger))
	router.Use(api.RecoveryMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", cfg.ListenAddr, "default_region", cfg.DefaultRegion)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("forced shutdown", "error", err)
	}
}
