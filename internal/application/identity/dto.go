package identity

// SignupRequest represents a request to create a new account. The fields
// intentionally carry no binding rules; whatever the client sends is the
// credential pair.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult carries the outcome message of an auth operation
type AuthResult struct {
	Message string `json:"message"`
}
