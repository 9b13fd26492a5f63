package handler

import (
	"net/http"

	"github.com/watergrid/meter-analytics-api/internal/api/handler/router"
	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dimensions(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/years",
			Method:  http.MethodGet,
			Handler: GetYears(service),
		},
		{
			Path:    "/api/divisions",
			Method:  http.MethodGet,
			Handler: GetDivisions(service),
		},
		{
			Path:    "/api/industries",
			Method:  http.MethodGet,
			Handler: GetIndustries(service),
		},
		{
			Path:    "/api/months",
			Method:  http.MethodGet,
			Handler: GetMonths(service),
		},
	}
}

func Charts(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/chart1",
			Method:  http.MethodGet,
			Handler: Chart1(service),
		},
		{
			Path:    "/api/chart2",
			Method:  http.MethodGet,
			Handler: Chart2(service),
		},
		{
			Path:    "/api/chart3",
			Method:  http.MethodGet,
			Handler: Chart3(service),
		},
		{
			Path:    "/api/chart4",
			Method:  http.MethodGet,
			Handler: Chart4(service),
		},
		{
			Path:    "/api/chart5",
			Method:  http.MethodGet,
			Handler: Chart5(service),
		},
		{
			Path:    "/api/chart6",
			Method:  http.MethodGet,
			Handler: Chart6(service),
		},
	}
}

func MeterData(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/alldata",
			Method:  http.MethodGet,
			Handler: GetAllData(service),
		},
		{
			Path:    "/api/all-meter-data",
			Method:  http.MethodGet,
			Handler: GetAllMeterData(service),
		},
		{
			Path:    "/api/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
		{
			Path:    "/api/test-db",
			Method:  http.MethodGet,
			Handler: TestDatabase(service),
		},
	}
}
