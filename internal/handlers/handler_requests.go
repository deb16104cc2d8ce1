package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portssvc "github.com/VShkaberda/Payments-contol/internal/core/ports/services"
	"github.com/VShkaberda/Payments-contol/internal/dto"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestHandler handles HTTP requests related to payment requests and their approval chains.
type requestHandler struct {
	user            domain.User
	requestService  portssvc.RequestSvcFacade
	approvalService portssvc.ApprovalSvcFacade
}

func registerRequestRoutes(rg *gin.RouterGroup, user domain.User, rs portssvc.RequestSvcFacade, as portssvc.ApprovalSvcFacade) {
	h := &requestHandler{user: user, requestService: rs, approvalService: as}

	requests := rg.Group("/requests")
	{
		requests.GET("", h.listRequests)
		requests.POST("", h.createRequest)
		requests.GET("/:requestID/approvals", h.getApprovals)
		requests.POST("/:requestID/decision", h.recordDecision)
		requests.POST("/:requestID/discard", h.discardRequest)
	}
	rg.GET("/approvers/first-stage", h.getFirstStageApprovers)
}

func parseRequestID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("requestID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return 0, false
	}
	return id, true
}

func (h *requestHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requests, err := h.requestService.ListRequests(c.Request.Context(), h.user, filter)
	if err != nil {
		respondError(c, err, "Failed to list requests")
		return
	}

	logger.Debug("Requests listed", slog.Int("count", len(requests)), slog.Bool("approval_only", filter.ApprovalOnly))
	respond(c, http.StatusOK, dto.ToPaymentRequestResponses(requests))
}

func (h *requestHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var body dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Warn("Failed to bind JSON for CreateRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req, err := body.ToNewRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.requestService.CreateRequest(c.Request.Context(), h.user.UserID, req)
	if err != nil {
		respondError(c, err, "Failed to create request")
		return
	}

	status := http.StatusCreated
	if !result.Accepted {
		status = http.StatusUnprocessableEntity
	}
	respond(c, status, dto.CreatePaymentResponse{Accepted: result.Accepted, RequestID: result.RequestID})
}

func (h *requestHandler) getApprovals(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	approvals, err := h.requestService.GetApprovals(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err, "Failed to get approvals")
		return
	}
	respond(c, http.StatusOK, approvals)
}

func (h *requestHandler) getFirstStageApprovers(c *gin.Context) {
	candidates, err := h.requestService.GetFirstStageApprovers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get approvers")
		return
	}
	respond(c, http.StatusOK, candidates)
}

// recordDecision records the session user's decision on a request.
func (h *requestHandler) recordDecision(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}
	var body dto.DecisionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	accepted, err := h.approvalService.RecordDecision(c.Request.Context(), h.user.UserID, requestID, *body.Approved)
	if err != nil {
		respondError(c, err, "Failed to record decision")
		return
	}
	respondMutation(c, accepted)
}

func (h *requestHandler) discardRequest(c *gin.Context) {
	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	accepted, err := h.approvalService.Discard(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err, "Failed to discard request")
		return
	}
	respondMutation(c, accepted)
}
