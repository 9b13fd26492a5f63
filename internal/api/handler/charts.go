package handler

import (
	"net/http"

	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting"
	"github.com/watergrid/meter-analytics-api/pkg/log"
)

// Chart1 ranks industries by total meter reading difference for a division
// and financial year.
func Chart1(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		division := r.URL.Query().Get("division")
		financialYear := r.URL.Query().Get("financial_year")

		totals, err := service.IndustryTotals(r.Context(), division, financialYear)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"division":       division,
			"financial_year": financialYear,
			"count":          len(totals),
		}).Debug("chart1: industry totals")
		writeJSON(w, r, totals)
	})
}

// Chart2 sums the difference per division for a financial year.
func Chart2(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		financialYear := r.URL.Query().Get("financial_year")

		totals, err := service.DivisionTotals(r.Context(), financialYear)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"financial_year": financialYear,
			"count":          len(totals),
		}).Debug("chart2: division totals")
		writeJSON(w, r, totals)
	})
}

// Chart3 sums the difference per financial year for an industry.
func Chart3(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		industry := r.URL.Query().Get("industry")

		totals, err := service.YearTotals(r.Context(), industry)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"industry": industry,
			"count":    len(totals),
		}).Debug("chart3: year totals")
		writeJSON(w, r, totals)
	})
}

// Chart4 returns date-stamped month totals for an industry.
func Chart4(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		industry := r.URL.Query().Get("industry")

		points, err := service.TimeSeries(r.Context(), industry)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"industry": industry,
			"count":    len(points),
		}).Debug("chart4: time series")
		writeJSON(w, r, points)
	})
}

// Chart5 sums the difference per month for an industry; financial_year is
// optional and "all" (or nothing) means every year.
func Chart5(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		industry := r.URL.Query().Get("industry")
		financialYear := r.URL.Query().Get("financial_year")

		totals, err := service.MonthTotalsByIndustry(r.Context(), industry, financialYear)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"industry":       industry,
			"financial_year": financialYear,
			"count":          len(totals),
		}).Debug("chart5: month totals by industry")
		writeJSON(w, r, totals)
	})
}

// Chart6 sums the difference per month for a division and financial year.
func Chart6(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		division := r.URL.Query().Get("division")
		financialYear := r.URL.Query().Get("financial_year")

		totals, err := service.MonthTotalsByDivision(r.Context(), division, financialYear)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"division":       division,
			"financial_year": financialYear,
			"count":          len(totals),
		}).Debug("chart6: month totals by division")
		writeJSON(w, r, totals)
	})
}
