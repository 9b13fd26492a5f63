package client

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/watergrid/meter-analytics-api/internal/domain"
	"github.com/watergrid/meter-analytics-api/pkg/utils"
)

// ChartPoint is one bar or slice of a rendered chart
type ChartPoint struct {
	Label string
	Value float64
}

// TimePoint is one point of a time-scaled chart
type TimePoint struct {
	Date  time.Time
	Label string
	Value float64
}

// SortOrder selects how a series is re-sorted for display
type SortOrder int

const (
	SortOriginal SortOrder = iota
	SortAscending
	SortDescending
)

// ErrSuperseded means a newer load for the same chart started before this
// one finished; its result must be discarded.
var ErrSuperseded = errors.New("chart load superseded by a newer request")

// Reports is the part of the API client the chart adapters consume
type Reports interface {
	IndustryComparison(ctx context.Context, division, financialYear string) ([]domain.IndustryTotal, error)
	DivisionComparison(ctx context.Context, financialYear string) ([]domain.DivisionTotal, error)
	YearlyTrend(ctx context.Context, industry string) ([]domain.YearTotal, error)
	TimeSeries(ctx context.Context, industry string) ([]domain.TimeSeriesPoint, error)
	MonthlyByIndustry(ctx context.Context, industry, financialYear string) ([]domain.MonthTotal, error)
	MonthlyByDivision(ctx context.Context, division, financialYear string) ([]domain.MonthTotal, error)
}

// displayPrefix matches the division scheme prefix stripped for display
var displayPrefix = regexp.MustCompile(`^[A-Z]{2}_`)

// loadState tracks the in-flight request of one chart
type loadState struct {
	generation string
	cancel     context.CancelFunc
}

// ChartLoader reshapes report rows into chart series. Each chart has at
// most one in-flight load: starting a new one cancels and supersedes the
// previous request, so a stale response can never win over a fresh one.
type ChartLoader struct {
	api Reports

	mu    sync.Mutex
	loads map[string]*loadState
}

func NewChartLoader(api Reports) *ChartLoader {
	return &ChartLoader{
		api:   api,
		loads: make(map[string]*loadState),
	}
}

// begin registers a new load generation for chart, cancelling any prior one
func (l *ChartLoader) begin(ctx context.Context, chart string) (context.Context, context.CancelFunc, string) {
	generation, err := utils.GenerateID()
	if err != nil {
		// nanoid only fails when the platform RNG does; fall back to a timestamp
		generation = fmt.Sprint(time.Now().UnixNano())
	}

	ctx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if prior, ok := l.loads[chart]; ok {
		prior.cancel()
	}
	l.loads[chart] = &loadState{generation: generation, cancel: cancel}
	l.mu.Unlock()

	return ctx, cancel, generation
}

// current reports whether generation is still the newest load for chart
func (l *ChartLoader) current(chart, generation string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.loads[chart]
	return ok && state.generation == generation
}

// LoadIndustryComparison loads the chart1 series: industries of a division
// and year ranked by total difference.
func (l *ChartLoader) LoadIndustryComparison(ctx context.Context, division, financialYear string, order SortOrder) ([]ChartPoint, error) {
	ctx, cancel, generation := l.begin(ctx, "chart1")
	defer cancel()

	rows, err := l.api.IndustryComparison(ctx, division, financialYear)
	if !l.current("chart1", generation) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ChartPoint{Label: row.IndustryName, Value: row.TotalDiff})
	}

	return sortPoints(points, order), nil
}

// LoadDivisionComparison loads the chart2 series with cleaned division labels.
func (l *ChartLoader) LoadDivisionComparison(ctx context.Context, financialYear string, order SortOrder) ([]ChartPoint, error) {
	ctx, cancel, generation := l.begin(ctx, "chart2")
	defer cancel()

	rows, err := l.api.DivisionComparison(ctx, financialYear)
	if !l.current("chart2", generation) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ChartPoint{Label: divisionLabel(row.DivisionID), Value: row.TotalDiff})
	}

	return sortPoints(points, order), nil
}

// LoadYearlyTrend loads the chart3 series.
func (l *ChartLoader) LoadYearlyTrend(ctx context.Context, industry string, order SortOrder) ([]ChartPoint, error) {
	ctx, cancel, generation := l.begin(ctx, "chart3")
	defer cancel()

	rows, err := l.api.YearlyTrend(ctx, industry)
	if !l.current("chart3", generation) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ChartPoint{Label: row.FinancialYear, Value: row.TotalDiff})
	}

	return sortPoints(points, order), nil
}

// LoadTimeSeries loads the chart4 series, bucketing the date-stamped rows
// into calendar month averages.
func (l *ChartLoader) LoadTimeSeries(ctx context.Context, industry string) ([]TimePoint, error) {
	ctx, cancel, generation := l.begin(ctx, "chart4")
	defer cancel()

	rows, err := l.api.TimeSeries(ctx, industry)
	if !l.current("chart4", generation) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)

	for _, row := range rows {
		if row.InsertDate == nil {
			continue
		}
		month := time.Date(row.InsertDate.Year(), row.InsertDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.sum += row.TotalDiff
		b.count++
	}

	points := make([]TimePoint, 0, len(buckets))
	for month, b := range buckets {
		points = append(points, TimePoint{
			Date:  month,
			Label: month.Format("Jan 2006"),
			Value: utils.RoundWithTwoDecimalPlace(b.sum / float64(b.count)),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}

// LoadMonthlyByIndustry loads the chart5 series; financialYear may be
// empty or "all" for every year.
func (l *ChartLoader) LoadMonthlyByIndustry(ctx context.Context, industry, financialYear string, order SortOrder) ([]ChartPoint, error) {
	ctx, cancel, generation := l.begin(ctx, "chart5")
	defer cancel()

	rows, err := l.api.MonthlyByIndustry(ctx, industry, financialYear)
	if !l.current("chart5", generation) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	return sortPoints(monthPoints(rows), order), nil
}

// LoadMonthlyByDivision loads the chart6 series.
func (l *ChartLoader) LoadMonthlyByDivision(ctx context.Context, division, financialYear string, order SortOrder) ([]ChartPoint, error) {
	ctx, cancel, generation := l.begin(ctx, "chart6")
	defer cancel()

	rows, err := l.api.MonthlyByDivision(ctx, division, financialYear)
	if !l.current("chart6", generation) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	return sortPoints(monthPoints(rows), order), nil
}

// divisionLabel cleans a division id for display: the generic "Division "
// fallback prefix and the two-letter scheme prefix are stripped; a strip
// that leaves nothing keeps the fallback.
func divisionLabel(divisionID string) string {
	label := strings.TrimPrefix(divisionID, "Division ")
	label = displayPrefix.ReplaceAllString(label, "")
	if label == "" {
		return fmt.Sprintf("Division %s", divisionID)
	}
	return label
}

// monthPoints maps month totals to chart points, falling back to a generic
// month label when the display name is missing.
func monthPoints(rows []domain.MonthTotal) []ChartPoint {
	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		label := row.MonthName
		if label == "" {
			label = fmt.Sprintf("Month %d", row.MonthID)
		}
		points = append(points, ChartPoint{Label: label, Value: row.TotalDiff})
	}
	return points
}

func sortPoints(points []ChartPoint, order SortOrder) []ChartPoint {
	switch order {
	case SortAscending:
		sort.SliceStable(points, func(i, j int) bool { return points[i].Value < points[j].Value })
	case SortDescending:
		sort.SliceStable(points, func(i, j int) bool { return points[i].Value > points[j].Value })
	}
	return points
}
