// Package domain contains the data structures of the application domain
package domain

import "time"

// MeterReading is one observation of an industry water meter for a given
// division, month and financial year. The table carries no foreign keys;
// every dimension list is a DISTINCT projection over these rows.
type MeterReading struct {
	IndustryName         string     `json:"industryname"`
	DivisionID           string     `json:"division_id"`
	IndustryID           string     `json:"industry_id"`
	MonthID              int        `json:"month_id"`
	MonthName            *string    `json:"monthname"`
	FinancialYear        string     `json:"financial_year"`
	InitialMeterReading  float64    `json:"initialmeter_reading"`
	FinalMeterReading    float64    `json:"finalmeter_reading"`
	MeterReadingDiff     string     `json:"meterreadingdifference"` // stored as text, cast to numeric at query time
	CurrentFinancialYear *string    `json:"currentfinancialyear"`
	InsertDate           *time.Time `json:"insert_date"`
}

// DimensionOption is one entry of a dropdown reference list. ID keeps the
// raw database value; Name is what the selector displays.
type DimensionOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PagedReadings is the /alldata response envelope.
type PagedReadings struct {
	Data               []MeterReading `json:"data"`
	Total              int            `json:"total"`
	Page               int            `json:"page"`
	PageSize           int            `json:"pageSize"`
	HasMore            bool           `json:"hasMore"`
	TotalPages         int            `json:"totalPages"`
	CurrentPageRecords int            `json:"currentPageRecords"`
}
