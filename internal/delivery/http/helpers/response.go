package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeInternalError = "internal_error"
)

// APIError is the body of every error response. Detail is only filled in development.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes body as is.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes an APIError with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSONSuccess(w, statusCode, APIError{Code: code, Message: message})
}

// WriteInternalError writes a 500 with message. The raw error text is included
// only when exposeDetail is set.
func WriteInternalError(w http.ResponseWriter, message string, err error, exposeDetail bool) {
	body := APIError{Code: ErrCodeInternalError, Message: message}
	if exposeDetail && err != nil {
		body.Detail = err.Error()
	}
	WriteJSONSuccess(w, http.StatusInternalServerError, body)
}
