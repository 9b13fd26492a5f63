package handler

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Database  string `json:"database"`
}

// HealthcheckHandler is a cheap liveness probe. It never touches the data
// store; /test-db is the connectivity diagnostic.
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, healthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Message:   "Backend is running successfully!",
			Database:  "Connected",
		})
	})
}
