package handler

// ApplyRequest represents request body for POST /organizations/:id.
// The rationale message is optional.
type ApplyRequest struct {
	Message string `json:"message"`
}
