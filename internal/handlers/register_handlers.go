package handlers

import (
	"net/http"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portssvc "github.com/VShkaberda/Payments-contol/internal/core/ports/services"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Session is the open store session the API works on.
type Session interface {
	User() domain.User
	Services() *portssvc.ServiceContainer
	Lock()
	Unlock()
}

// RegisterRoutes sets up all application routes on top of one session.
func RegisterRoutes(r *gin.Engine, sess Session) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	user := sess.User()
	services := sess.Services()

	v1 := r.Group("/api/v1",
		middleware.SessionUser(user.UserID),
		networkFlag(),
		middleware.Serialize(sess),
	)

	registerSessionRoutes(v1, user)
	registerRequestRoutes(v1, user, services.Request, services.Approval)
	registerReferenceRoutes(v1, user, services.Reference)
	registerLimitRoutes(v1, user, services.Limit)
}
