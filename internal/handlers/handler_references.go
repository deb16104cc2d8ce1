package handlers

import (
	"net/http"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portssvc "github.com/VShkaberda/Payments-contol/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type referenceHandler struct {
	user             domain.User
	referenceService portssvc.ReferenceSvcFacade
}

func registerReferenceRoutes(rg *gin.RouterGroup, user domain.User, rs portssvc.ReferenceSvcFacade) {
	h := &referenceHandler{user: user, referenceService: rs}

	refs := rg.Group("/references")
	{
		refs.GET("/categories", h.getCategories)
		refs.GET("/mvz", h.getMVZ)
		refs.GET("/initiators", h.getInitiators)
	}
}

func (h *referenceHandler) getCategories(c *gin.Context) {
	categories, err := h.referenceService.GetCategories(c.Request.Context(), h.user)
	if err != nil {
		respondError(c, err, "Failed to get categories")
		return
	}
	respond(c, http.StatusOK, categories)
}

func (h *referenceHandler) getMVZ(c *gin.Context) {
	list, err := h.referenceService.GetMVZ(c.Request.Context(), h.user)
	if err != nil {
		respondError(c, err, "Failed to get cost centers")
		return
	}
	respond(c, http.StatusOK, list)
}

func (h *referenceHandler) getInitiators(c *gin.Context) {
	initiators, err := h.referenceService.GetAllowedInitiators(c.Request.Context(), h.user)
	if err != nil {
		respondError(c, err, "Failed to get initiators")
		return
	}
	respond(c, http.StatusOK, initiators)
}
