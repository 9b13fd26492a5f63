package reporting

import (
	"context"

	"github.com/watergrid/meter-analytics-api/internal/domain"
)

// Reporter exposes every read-only view the dashboard consumes: dimension
// lists for the dropdowns, the chart aggregations, pagination over the raw
// rows and the summary statistics.
type Reporter interface {
	// ListYears returns the distinct financial years, newest first
	ListYears(ctx context.Context) ([]domain.DimensionOption, error)

	// ListDivisions returns the distinct divisions with their display name
	// (scheme prefix stripped)
	ListDivisions(ctx context.Context) ([]domain.DimensionOption, error)

	// ListIndustries returns the distinct industry names, ascending
	ListIndustries(ctx context.Context) ([]domain.DimensionOption, error)

	// ListMonths returns the distinct month ids, ascending
	ListMonths(ctx context.Context) ([]domain.DimensionOption, error)

	// IndustryTotals ranks the industries of a division and year by total
	// meter reading difference, descending
	IndustryTotals(ctx context.Context, division, financialYear string) ([]domain.IndustryTotal, error)

	// DivisionTotals sums the difference per division for a year
	DivisionTotals(ctx context.Context, financialYear string) ([]domain.DivisionTotal, error)

	// YearTotals sums the difference per financial year for an industry
	YearTotals(ctx context.Context, industry string) ([]domain.YearTotal, error)

	// TimeSeries returns date-stamped month totals for an industry
	TimeSeries(ctx context.Context, industry string) ([]domain.TimeSeriesPoint, error)

	// MonthTotalsByIndustry sums the difference per month for an industry;
	// an empty or "all" financialYear means no year restriction
	MonthTotalsByIndustry(ctx context.Context, industry, financialYear string) ([]domain.MonthTotal, error)

	// MonthTotalsByDivision sums the difference per month for a division and year
	MonthTotalsByDivision(ctx context.Context, division, financialYear string) ([]domain.MonthTotal, error)

	// PageReadings returns one page of the full ordering plus page metadata
	PageReadings(ctx context.Context, page, pageSize int) (*domain.PagedReadings, error)

	// AllReadings returns the raw rows of the legacy endpoint, capped
	AllReadings(ctx context.Context) ([]domain.MeterReading, error)

	// Stats computes the summary aggregates
	Stats(ctx context.Context) (*domain.Stats, error)

	// CheckDatabase probes store connectivity
	CheckDatabase(ctx context.Context) (*domain.DBStatus, error)
}
