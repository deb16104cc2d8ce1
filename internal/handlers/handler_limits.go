package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portssvc "github.com/VShkaberda/Payments-contol/internal/core/ports/services"
	"github.com/VShkaberda/Payments-contol/internal/dto"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
	"github.com/gin-gonic/gin"
)

type limitHandler struct {
	user         domain.User
	limitService portssvc.LimitSvcFacade
	now          func() time.Time
}

func registerLimitRoutes(rg *gin.RouterGroup, user domain.User, ls portssvc.LimitSvcFacade) {
	h := &limitHandler{user: user, limitService: ls, now: time.Now}

	limits := rg.Group("/limits")
	{
		limits.GET("", h.getAllLimits)
		limits.PUT("", h.updateLimits)
		limits.GET("/remaining", h.getRemainingLimit)
	}
}

func (h *limitHandler) getAllLimits(c *gin.Context) {
	limits, err := h.limitService.GetAllLimits(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get limits")
		return
	}
	respond(c, http.StatusOK, limits)
}

func (h *limitHandler) updateLimits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var body dto.UpdateLimitsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLimits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	accepted, err := h.limitService.UpdateLimits(c.Request.Context(), body.Limits)
	if err != nil {
		respondError(c, err, "Failed to update limits")
		return
	}
	respondMutation(c, accepted)
}

// getRemainingLimit reports the session user's allowance for the month of
// ?date=YYYY-MM-DD, defaulting to today.
func (h *limitHandler) getRemainingLimit(c *gin.Context) {
	date := h.now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	remaining, err := h.limitService.GetRemainingLimit(c.Request.Context(), h.user.UserID, date)
	if err != nil {
		respondError(c, err, "Failed to get remaining limit")
		return
	}
	respond(c, http.StatusOK, dto.RemainingLimitResponse{Date: date.Format(dto.DateLayout), Remaining: remaining})
}
