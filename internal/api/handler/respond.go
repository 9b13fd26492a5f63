package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting"
	"github.com/watergrid/meter-analytics-api/pkg/apiErrors"
	"github.com/watergrid/meter-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}

// writeServiceError maps a Reporter error onto the API taxonomy: missing
// parameters become 400, an expired request deadline 408, anything else is a
// query failure carrying the store error verbatim in details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	if reporting.IsMissingParameter(err) {
		logger.WithField("path", r.URL.Path).Warn(err.Error())
		apiErrors.WriteError(w, apiErrors.ErrMissingParameter, err.Error(), "")
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.WithField("path", r.URL.Path).Warn("request deadline exceeded")
		apiErrors.WriteError(w, apiErrors.ErrTimeout, "Request Timeout", "")
		return
	}

	logger.WithError(err).Error("query failed")
	apiErrors.WriteError(w, apiErrors.ErrQueryFailure, "Internal Server Error", err.Error())
}
