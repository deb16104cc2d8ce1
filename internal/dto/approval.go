package dto

// DecisionRequest is the body of POST /requests/:id/decision.
type DecisionRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// MutationResponse answers the mutations that only report success.
type MutationResponse struct {
	Accepted bool `json:"accepted"`
}
