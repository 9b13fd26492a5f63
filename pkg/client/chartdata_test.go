package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/watergrid/meter-analytics-api/internal/domain"
)

// fakeReports serves canned rows and can hold a call open until released
type fakeReports struct {
	mu       sync.Mutex
	industry []domain.IndustryTotal
	division []domain.DivisionTotal
	yearly   []domain.YearTotal
	series   []domain.TimeSeriesPoint
	monthly  []domain.MonthTotal
	err      error

	started   chan struct{}
	holdFirst bool
	callNum   int
}

// wait holds the first call open until its context is cancelled when
// holdFirst is set; later calls pass straight through.
func (f *fakeReports) wait(ctx context.Context) error {
	f.mu.Lock()
	f.callNum++
	first := f.callNum == 1
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.holdFirst && first {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (f *fakeReports) IndustryComparison(ctx context.Context, division, financialYear string) ([]domain.IndustryTotal, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.industry, f.err
}

func (f *fakeReports) DivisionComparison(ctx context.Context, financialYear string) ([]domain.DivisionTotal, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.division, f.err
}

func (f *fakeReports) YearlyTrend(ctx context.Context, industry string) ([]domain.YearTotal, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.yearly, f.err
}

func (f *fakeReports) TimeSeries(ctx context.Context, industry string) ([]domain.TimeSeriesPoint, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.series, f.err
}

func (f *fakeReports) MonthlyByIndustry(ctx context.Context, industry, financialYear string) ([]domain.MonthTotal, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.monthly, f.err
}

func (f *fakeReports) MonthlyByDivision(ctx context.Context, division, financialYear string) ([]domain.MonthTotal, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.monthly, f.err
}

func TestDivisionLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Scheme prefix is stripped",
			input:    "EE_Adava",
			expected: "Adava",
		},
		{
			name:     "Generic fallback prefix is stripped",
			input:    "Division EE_Adava",
			expected: "Adava",
		},
		{
			name:     "Plain name passes through",
			input:    "Central",
			expected: "Central",
		},
		{
			name:     "Prefix-only id keeps a readable fallback",
			input:    "EE_",
			expected: "Division EE_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, divisionLabel(tt.input))
		})
	}
}

func TestChartLoader_LoadIndustryComparison_Sorting(t *testing.T) {
	api := &fakeReports{
		industry: []domain.IndustryTotal{
			{IndustryName: "Paper", TotalDiff: 50},
			{IndustryName: "Textiles", TotalDiff: 120},
			{IndustryName: "Cement", TotalDiff: 80},
		},
	}
	loader := NewChartLoader(api)

	tests := []struct {
		name     string
		order    SortOrder
		expected []string
	}{
		{
			name:     "Original order keeps the server ranking",
			order:    SortOriginal,
			expected: []string{"Paper", "Textiles", "Cement"},
		},
		{
			name:     "Ascending by value",
			order:    SortAscending,
			expected: []string{"Paper", "Cement", "Textiles"},
		},
		{
			name:     "Descending by value",
			order:    SortDescending,
			expected: []string{"Textiles", "Cement", "Paper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := loader.LoadIndustryComparison(context.Background(), "EE_Adava", "2023-2024", tt.order)

			assert.NoError(t, err)

			labels := make([]string, 0, len(points))
			for _, p := range points {
				labels = append(labels, p.Label)
			}
			assert.Equal(t, tt.expected, labels)
		})
	}
}

func TestChartLoader_LoadDivisionComparison_Labels(t *testing.T) {
	api := &fakeReports{
		division: []domain.DivisionTotal{
			{DivisionID: "EE_Adava", TotalDiff: 10},
			{DivisionID: "Central", TotalDiff: 20},
		},
	}
	loader := NewChartLoader(api)

	points, err := loader.LoadDivisionComparison(context.Background(), "2023-2024", SortOriginal)

	assert.NoError(t, err)
	assert.Equal(t, []ChartPoint{
		{Label: "Adava", Value: 10},
		{Label: "Central", Value: 20},
	}, points)
}

func TestChartLoader_LoadMonthlyByIndustry_LabelFallback(t *testing.T) {
	api := &fakeReports{
		monthly: []domain.MonthTotal{
			{MonthID: 1, MonthName: "January", TotalDiff: 5},
			{MonthID: 2, MonthName: "", TotalDiff: 7},
		},
	}
	loader := NewChartLoader(api)

	points, err := loader.LoadMonthlyByIndustry(context.Background(), "Textiles", "all", SortOriginal)

	assert.NoError(t, err)
	assert.Equal(t, []ChartPoint{
		{Label: "January", Value: 5},
		{Label: "Month 2", Value: 7},
	}, points)
}

func TestChartLoader_LoadTimeSeries_BucketsByCalendarMonth(t *testing.T) {
	stamp := func(day int, month time.Month) *time.Time {
		d := time.Date(2024, month, day, 10, 0, 0, 0, time.UTC)
		return &d
	}

	api := &fakeReports{
		series: []domain.TimeSeriesPoint{
			{MonthID: 1, TotalDiff: 10, InsertDate: stamp(3, time.February)},
			{MonthID: 2, TotalDiff: 20, InsertDate: stamp(20, time.February)},
			{MonthID: 3, TotalDiff: 7.505, InsertDate: stamp(5, time.January)},
			{MonthID: 4, TotalDiff: 99, InsertDate: nil}, // undated rows are skipped
		},
	}
	loader := NewChartLoader(api)

	points, err := loader.LoadTimeSeries(context.Background(), "Textiles")

	assert.NoError(t, err)
	assert.Len(t, points, 2)

	// chronological order, one point per calendar month
	assert.Equal(t, "Jan 2024", points[0].Label)
	assert.Equal(t, 7.51, points[0].Value)

	assert.Equal(t, "Feb 2024", points[1].Label)
	assert.Equal(t, 15.0, points[1].Value)
}

func TestChartLoader_ErrorPassesThrough(t *testing.T) {
	api := &fakeReports{err: assert.AnError}
	loader := NewChartLoader(api)

	points, err := loader.LoadYearlyTrend(context.Background(), "Textiles", SortOriginal)

	assert.Nil(t, points)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestChartLoader_NewerLoadSupersedesOlder(t *testing.T) {
	api := &fakeReports{
		industry:  []domain.IndustryTotal{{IndustryName: "Textiles", TotalDiff: 1}},
		started:   make(chan struct{}, 1),
		holdFirst: true,
	}
	loader := NewChartLoader(api)

	firstDone := make(chan error, 1)
	go func() {
		_, err := loader.LoadIndustryComparison(context.Background(), "EE_Adava", "2023-2024", SortOriginal)
		firstDone <- err
	}()

	// wait until the first load is in flight
	<-api.started

	// starting a second load cancels and replaces the first
	points, err := loader.LoadIndustryComparison(context.Background(), "EE_Adava", "2024-2025", SortOriginal)

	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.ErrorIs(t, <-firstDone, ErrSuperseded)
}

func TestChartLoader_DifferentChartsDoNotInterfere(t *testing.T) {
	api := &fakeReports{
		industry: []domain.IndustryTotal{{IndustryName: "Textiles", TotalDiff: 1}},
		yearly:   []domain.YearTotal{{FinancialYear: "2023-2024", TotalDiff: 2}},
	}
	loader := NewChartLoader(api)

	_, err := loader.LoadIndustryComparison(context.Background(), "EE_Adava", "2023-2024", SortOriginal)
	assert.NoError(t, err)

	// a load for another chart must not supersede the first one's slot
	_, err = loader.LoadYearlyTrend(context.Background(), "Textiles", SortOriginal)
	assert.NoError(t, err)

	_, err = loader.LoadIndustryComparison(context.Background(), "EE_Adava", "2023-2024", SortOriginal)
	assert.NoError(t, err)
}
