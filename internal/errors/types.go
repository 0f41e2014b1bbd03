package errors

// represents the error envelope returned by every endpoint
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type errorInfo struct {
	category string
}
