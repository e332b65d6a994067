package models

// Result is the outcome of an auth workflow operation. Expected failures
// (unknown user, bad credentials, invalid token) are reported through the
// status code and payload rather than as Go errors.
type Result struct {
	// StatusCode is the HTTP status code to answer with.
	StatusCode int

	// Response is the JSON payload written to the response body.
	Response any
}

// NewMessageResult constructs a [Result] carrying a [MessageResponse].
func NewMessageResult(statusCode int, message string) Result {
	return Result{StatusCode: statusCode, Response: MessageResponse{Message: message}}
}

// MessageResponse is a short human-readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the signed session token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ValidationErrorResponse is returned when a request body fails boundary
// validation. Errors maps JSON field names to their violation message.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
