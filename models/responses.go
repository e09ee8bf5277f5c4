package models

// TokenResponse is the success payload of the register and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the success payload of the profile endpoint.
// Message is the literal string "true"; the field shape is kept for
// compatibility with existing frontend clients.
type ProfileResponse struct {
	Checked []string `json:"checked"`
	Message string   `json:"message"`
}

// ChecklistResponse is the success payload of the check and uncheck
// endpoints. Result holds the full updated checklist after the mutation.
type ChecklistResponse struct {
	Message string   `json:"message"`
	Result  []string `json:"result"`
}

// MessageResponse is the success payload of endpoints that only confirm an
// action (upload, unsubscribe).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error payload shared by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
