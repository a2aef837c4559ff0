package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/limaJavier/teambalance/internal/api"
	"github.com/limaJavier/teambalance/internal/config"
	"github.com/limaJavier/teambalance/internal/logger"
	"github.com/limaJavier/teambalance/pkg/model"
)

const serviceName = "team-balance"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.LogFormat, cfg.IsDevelopment())
	logger.WithService(log, serviceName).WithFields(logrus.Fields{
		"environment":    cfg.Env,
		"port":           cfg.Port,
		"max_partitions": cfg.MaxPartitions,
	}).Info("Starting team balance service")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	balancer := model.NewBalancer(cfg.MaxPartitions, log)

	// Compute the supersets of the configured modes before accepting requests
	for _, mode := range cfg.WarmModes {
		start := time.Now()
		superset, err := balancer.Superset(mode)
		if err != nil {
			logger.WithService(log, serviceName).WithField("mode", mode).Fatalf("Failed to warm superset: %v", err)
		}
		logger.WithService(log, serviceName).WithFields(logrus.Fields{
			"mode":       superset.Mode.String(),
			"partitions": len(superset.Partitions),
			"elapsed":    time.Since(start),
		}).Info("Warmed partition superset")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.NewRouter(balancer, cfg.DeviationFloor, log),
	}

	go func() {
		logger.WithService(log, serviceName).WithField("port", cfg.Port).Info("Team balance service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService(log, serviceName).Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService(log, serviceName).Info("Shutting down team balance service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService(log, serviceName).Fatalf("Team balance service forced to shutdown: %v", err)
	}

	logger.WithService(log, serviceName).Info("Team balance service exited")
}
