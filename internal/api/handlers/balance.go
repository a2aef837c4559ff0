package handlers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/limaJavier/teambalance/internal/api/middleware"
	"github.com/limaJavier/teambalance/pkg/model"
	"github.com/limaJavier/teambalance/pkg/rating"
)

// BalanceHandler handles team balancing endpoints
type BalanceHandler struct {
	balancer       model.Balancer
	deviationFloor float64
	logger         *logrus.Logger
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(
	balancer model.Balancer,
	deviationFloor float64,
	logger *logrus.Logger,
) *BalanceHandler {
	return &BalanceHandler{
		balancer:       balancer,
		deviationFloor: deviationFloor,
		logger:         logger,
	}
}

// BalanceTeams assigns every player of the request to a team
func (h *BalanceHandler) BalanceTeams(c *gin.Context) {
	var req model.BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request format",
			Code:  "INVALID_REQUEST",
			Details: map[string]string{
				"validation_error": err.Error(),
			},
		})
		return
	}

	// The balancer expects non-negative ratings and deviations above the floor
	ratings, deviations := rating.Clamp(req.Ratings, req.Deviations, h.deviationFloor)

	game, err := h.balancer.Balance(ratings, deviations, req.GameMode, req.Constraints)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"mode":       game.Mode.String(),
		"players":    len(ratings),
		"fairness":   game.Fairness,
	}).Debug("Balanced teams")

	c.JSON(http.StatusOK, BalanceResponse{
		Mode:          game.Mode.String(),
		Teams:         game.Labels(),
		Probabilities: game.Probabilities,
		Fairness:      game.Fairness,
	})
}

// GetMode describes a game mode and the size of its partition superset
func (h *BalanceHandler) GetMode(c *gin.Context) {
	mode, err := model.ParseMode(c.Param("mode"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModeResponse{
		Mode:       mode.String(),
		Teams:      mode.Teams,
		TeamSize:   mode.Size,
		Partitions: model.SupersetSize(mode),
		Cached:     slices.Contains(h.balancer.CachedModes(), mode.String()),
	})
}

func (h *BalanceHandler) abortWithError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, model.ErrInvalidModeSpec):
		status, code = http.StatusBadRequest, "INVALID_MODE"
	case errors.Is(err, model.ErrInvalidConstraintSpec):
		status, code = http.StatusBadRequest, "INVALID_CONSTRAINTS"
	case errors.Is(err, model.ErrDimensionMismatch):
		status, code = http.StatusBadRequest, "DIMENSION_MISMATCH"
	case errors.Is(err, model.ErrNoFeasiblePartition):
		status, code = http.StatusUnprocessableEntity, "NO_FEASIBLE_PARTITION"
	case errors.Is(err, model.ErrModeTooLarge):
		status, code = http.StatusUnprocessableEntity, "MODE_TOO_LARGE"
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
