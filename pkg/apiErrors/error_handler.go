package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error kinds of the API surface
const (
	// Request errors (400-499)
	ErrMissingParameter = "REQ_001" // required query parameter absent
	ErrNotFound         = "REQ_002" // unknown API path
	ErrTimeout          = "REQ_003" // request exceeded the server deadline

	// Server errors (500-599)
	ErrInternalServer = "SRV_001" // unhandled server error
	ErrQueryFailure   = "SRV_002" // data store query failed
	ErrDBConnection   = "SRV_003" // data store unreachable
)

var httpStatusMap = map[string]int{
	ErrMissingParameter: http.StatusBadRequest,
	ErrNotFound:         http.StatusNotFound,
	ErrTimeout:          http.StatusRequestTimeout,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrQueryFailure:     http.StatusInternalServerError,
	ErrDBConnection:     http.StatusInternalServerError,
}

// APIError is the JSON error body. Error carries the human readable message
// and Details the verbatim cause (typically the driver error string).
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteError writes the standardized error body for the given kind
func WriteError(w http.ResponseWriter, code string, message string, details string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{
		Error:   message,
		Details: details,
	})
}
