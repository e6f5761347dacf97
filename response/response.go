package response

// ErrorResponse is the error body for every failing endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}
