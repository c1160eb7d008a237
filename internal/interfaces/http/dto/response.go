package dto

// ErrorBody is the error shape of the resource endpoints. Clients key off
// the single "error" field, so nothing else is ever added to it.
type ErrorBody struct {
	Error string `json:"error"`
}

// NewErrorBody creates an error body with the given message
func NewErrorBody(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// AuthResponse is the outcome shape of the auth endpoints. Both success
// and failure use it; resource-style error bodies are never returned here.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewAuthResponse creates an auth outcome with the given flag and message
func NewAuthResponse(success bool, message string) AuthResponse {
	return AuthResponse{Success: success, Message: message}
}
