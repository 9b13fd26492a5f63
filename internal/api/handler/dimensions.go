package handler

import (
	"net/http"

	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting"
	"github.com/watergrid/meter-analytics-api/pkg/log"
)

func GetYears(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		years, err := service.ListYears(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("count", len(years)).Debug("years listed")
		writeJSON(w, r, years)
	})
}

func GetDivisions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		divisions, err := service.ListDivisions(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("count", len(divisions)).Debug("divisions listed")
		writeJSON(w, r, divisions)
	})
}

func GetIndustries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		industries, err := service.ListIndustries(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("count", len(industries)).Debug("industries listed")
		writeJSON(w, r, industries)
	})
}

func GetMonths(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		months, err := service.ListMonths(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("count", len(months)).Debug("months listed")
		writeJSON(w, r, months)
	})
}
