package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting"
	"github.com/watergrid/meter-analytics-api/pkg/apiErrors"
	"github.com/watergrid/meter-analytics-api/pkg/log"
)

// intQueryParam parses a query parameter defensively: missing or
// non-numeric values fall back to the default instead of failing.
func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// GetAllData serves the paginated raw listing.
func GetAllData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := intQueryParam(r, "page", reporting.DefaultPage)
		pageSize := intQueryParam(r, "pageSize", reporting.DefaultPageSize)

		result, err := service.PageReadings(r.Context(), page, pageSize)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				writeServiceError(w, r, err)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("paginated data query failed")
			apiErrors.WriteError(w, apiErrors.ErrQueryFailure, "Database query failed", err.Error())
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"page":      result.Page,
			"page_size": result.PageSize,
			"records":   result.CurrentPageRecords,
			"total":     result.Total,
		}).Debug("page fetched")
		writeJSON(w, r, result)
	})
}

// GetAllMeterData is the legacy capped listing.
func GetAllMeterData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		readings, err := service.AllReadings(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("count", len(readings)).Debug("legacy listing fetched")
		writeJSON(w, r, readings)
	})
}

func GetStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"total_records":    stats.TotalRecords,
			"unique_divisions": stats.UniqueDivisions,
		}).Debug("stats computed")
		writeJSON(w, r, stats)
	})
}

// TestDatabase is the connectivity diagnostic behind /test-db.
func TestDatabase(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := service.CheckDatabase(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("database connectivity check failed")
			apiErrors.WriteError(w, apiErrors.ErrDBConnection, "Database connection failed", err.Error())
			return
		}

		writeJSON(w, r, status)
	})
}
