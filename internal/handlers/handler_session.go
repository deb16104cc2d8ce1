package handlers

import (
	"net/http"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	"github.com/gin-gonic/gin"
)

func registerSessionRoutes(rg *gin.RouterGroup, user domain.User) {
	rg.GET("/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, user)
	})
}
