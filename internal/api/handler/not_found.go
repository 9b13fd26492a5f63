package handler

import (
	"net/http"
)

// availableEndpoints is the listing returned on unmatched /api paths.
var availableEndpoints = []string{
	"GET /api/health",
	"GET /api/years",
	"GET /api/divisions",
	"GET /api/industries",
	"GET /api/months",
	"GET /api/chart1?division=X&financial_year=Y",
	"GET /api/chart2?financial_year=X",
	"GET /api/chart3?industry=X",
	"GET /api/chart4?industry=X",
	"GET /api/chart5?industry=X&financial_year=Y",
	"GET /api/chart6?division=X&financial_year=Y",
	"GET /api/alldata?page=0&pageSize=20",
	"GET /api/all-meter-data",
	"GET /api/stats",
	"GET /api/test-db",
}

type notFoundResponse struct {
	Error              string   `json:"error"`
	RequestedPath      string   `json:"requested_path"`
	Method             string   `json:"method"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// NotFoundHandler answers unmatched paths with the endpoint listing.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(notFoundResponse{
			Error:              "API endpoint not found",
			RequestedPath:      r.URL.Path,
			Method:             r.Method,
			AvailableEndpoints: availableEndpoints,
		})
	})
}
