package domain

import "time"

// IndustryTotal is a chart1 row: one industry with its summed meter reading
// difference for the selected division and financial year.
type IndustryTotal struct {
	IndustryName string  `json:"industryname"`
	TotalDiff    float64 `json:"total_diff"`
}

// DivisionTotal is a chart2 row.
type DivisionTotal struct {
	DivisionID string  `json:"division_id"`
	TotalDiff  float64 `json:"total_diff"`
}

// YearTotal is a chart3 row.
type YearTotal struct {
	FinancialYear string  `json:"financial_year"`
	TotalDiff     float64 `json:"total_diff"`
}

// TimeSeriesPoint is a chart4 row: month totals keyed by the insertion
// timestamp so the client can plot them on a time scale.
type TimeSeriesPoint struct {
	MonthID    int        `json:"month_id"`
	TotalDiff  float64    `json:"total_diff"`
	IndustryID string     `json:"industry_id"`
	InsertDate *time.Time `json:"insert_date"`
}

// MonthTotal is a chart5/chart6 row.
type MonthTotal struct {
	MonthID   int     `json:"month_id"`
	MonthName string  `json:"monthname"`
	TotalDiff float64 `json:"total_diff"`
}

// Stats is the /stats response: a fixed set of scalar aggregates over the
// readings table.
type Stats struct {
	TotalRecords     int     `json:"total_records"`
	UniqueIndustries int     `json:"unique_industries"`
	UniqueDivisions  int     `json:"unique_divisions"`
	UniqueMonths     int     `json:"unique_months"`
	TotalDifference  float64 `json:"total_difference"`
}

// DBStatus is the /test-db response.
type DBStatus struct {
	Status          string    `json:"status"`
	CurrentTime     time.Time `json:"current_time"`
	DatabaseVersion string    `json:"database_version"`
}
