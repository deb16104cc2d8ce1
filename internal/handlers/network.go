package handlers

import (
	"log/slog"
	"net/http"

	"github.com/VShkaberda/Payments-contol/internal/dto"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NetworkUnavailableHeader marks a response whose store operation lost its connection.
const NetworkUnavailableHeader = middleware.NetworkUnavailableHeader

const networkFlagKey = "networkFlag"

// networkFlag attaches a per-request observer that records absorbed network faults.
func networkFlag() gin.HandlerFunc {
	return func(c *gin.Context) {
		flag := &faultguard.Flag{}
		c.Set(networkFlagKey, flag)
		c.Request = c.Request.WithContext(faultguard.WithObserver(c.Request.Context(), flag))
		c.Next()
	}
}

func networkLost(c *gin.Context) bool {
	v, ok := c.Get(networkFlagKey)
	if !ok {
		return false
	}
	flag, ok := v.(*faultguard.Flag)
	return ok && flag.Raised()
}

// respond writes payload, unless the store went away while serving the
// request. Then the answer is an empty 503 flagged with NetworkUnavailableHeader.
func respond(c *gin.Context, status int, payload any) {
	if networkLost(c) {
		c.Header(NetworkUnavailableHeader, "true")
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	c.JSON(status, payload)
}

// respondMutation answers a mutation that reports only success or rejection.
func respondMutation(c *gin.Context, accepted bool) {
	status := http.StatusOK
	if !accepted {
		status = http.StatusUnprocessableEntity
	}
	respond(c, status, dto.MutationResponse{Accepted: accepted})
}

// respondError reports a fault the service did not absorb.
func respondError(c *gin.Context, err error, msg string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
