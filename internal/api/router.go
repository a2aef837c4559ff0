package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/limaJavier/teambalance/internal/api/handlers"
	"github.com/limaJavier/teambalance/internal/api/middleware"
	"github.com/limaJavier/teambalance/pkg/model"
)

// NewRouter wires the balancing and health endpoints
func NewRouter(balancer model.Balancer, deviationFloor float64, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	balanceHandler := handlers.NewBalanceHandler(balancer, deviationFloor, logger)
	healthHandler := handlers.NewHealthHandler(balancer)

	router.POST("/team/balance", balanceHandler.BalanceTeams)
	router.GET("/modes/:mode", balanceHandler.GetMode)
	router.GET("/health", healthHandler.GetHealth)

	return router
}
