package server

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code,omitempty"`
}

// CreateRequest is the body of POST /v1/sessions.
type CreateRequest struct {
	Dim   int    `json:"dim" binding:"required,min=1,max=9"`
	Notes string `json:"notes" binding:"max=500"`
}

// RotateRequest is the body of POST /v1/sessions/:id/rotate.
type RotateRequest struct {
	Moves string `json:"moves"`
}

// ScrambleRequest is the body of POST /v1/sessions/:id/scramble.
// Omitted fields take the server defaults.
type ScrambleRequest struct {
	Count        *int  `json:"count" binding:"omitempty,min=0,max=1000"`
	RandomLayers *bool `json:"random_layers"`
	RandomTurns  *bool `json:"random_turns"`
}

// RevertRequest is the body of POST /v1/sessions/:id/revert.
type RevertRequest struct {
	Index *int `json:"index" binding:"required"`
}

// SessionSummary is one entry of GET /v1/sessions.
type SessionSummary struct {
	ID        string `json:"id"`
	Dim       int    `json:"dim"`
	Notes     string `json:"notes,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
