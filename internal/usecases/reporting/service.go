package reporting

import (
	"context"
	"fmt"
	"regexp"

	"github.com/watergrid/meter-analytics-api/infrastructure/repository"
	"github.com/watergrid/meter-analytics-api/internal/domain"
)

const (
	// DefaultPage is the zero-based page used when none is supplied
	DefaultPage = 0
	// DefaultPageSize is the page size used when none is supplied
	DefaultPageSize = 20

	industriesLimit    = 100
	industryTotalLimit = 50
	timeSeriesLimit    = 50
	allReadingsLimit   = 100

	// AllYears is the sentinel meaning "no financial year restriction"
	AllYears = "all"
)

// divisionPrefix matches the two-uppercase-letter scheme prefix of a
// division code, e.g. the "EE_" of "EE_Adava".
var divisionPrefix = regexp.MustCompile(`^[A-Z]{2}_`)

type Service struct {
	repo repository.MeterReadingRepository
}

func NewService(repo repository.MeterReadingRepository) Reporter {
	return &Service{repo: repo}
}

func (s *Service) ListYears(ctx context.Context) ([]domain.DimensionOption, error) {
	years, err := s.repo.ListYears(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]domain.DimensionOption, 0, len(years))
	for _, year := range years {
		options = append(options, domain.DimensionOption{ID: year, Name: year})
	}

	return options, nil
}

func (s *Service) ListDivisions(ctx context.Context) ([]domain.DimensionOption, error) {
	divisions, err := s.repo.ListDivisionIDs(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]domain.DimensionOption, 0, len(divisions))
	for _, id := range divisions {
		options = append(options, domain.DimensionOption{
			ID:   id, // keep the raw code for follow-up queries
			Name: DivisionDisplayName(id),
		})
	}

	return options, nil
}

// DivisionDisplayName strips the scheme prefix for display. When stripping
// yields an empty or unchanged string the raw code is kept.
func DivisionDisplayName(id string) string {
	clean := divisionPrefix.ReplaceAllString(id, "")
	if clean == "" || clean == id {
		return id
	}
	return clean
}

func (s *Service) ListIndustries(ctx context.Context) ([]domain.DimensionOption, error) {
	industries, err := s.repo.ListIndustries(ctx, industriesLimit)
	if err != nil {
		return nil, err
	}

	options := make([]domain.DimensionOption, 0, len(industries))
	for _, name := range industries {
		options = append(options, domain.DimensionOption{ID: name, Name: name})
	}

	return options, nil
}

func (s *Service) ListMonths(ctx context.Context) ([]domain.DimensionOption, error) {
	months, err := s.repo.ListMonthIDs(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]domain.DimensionOption, 0, len(months))
	for _, id := range months {
		options = append(options, domain.DimensionOption{
			ID:   fmt.Sprint(id),
			Name: fmt.Sprintf("Month %d", id),
		})
	}

	return options, nil
}

func (s *Service) IndustryTotals(ctx context.Context, division, financialYear string) ([]domain.IndustryTotal, error) {
	if division == "" || financialYear == "" {
		return nil, NewMissingParameterError("division", "financial_year")
	}

	return s.repo.IndustryTotals(ctx, division, financialYear, industryTotalLimit)
}

func (s *Service) DivisionTotals(ctx context.Context, financialYear string) ([]domain.DivisionTotal, error) {
	if financialYear == "" {
		return nil, NewMissingParameterError("financial_year")
	}

	return s.repo.DivisionTotals(ctx, financialYear)
}

func (s *Service) YearTotals(ctx context.Context, industry string) ([]domain.YearTotal, error) {
	if industry == "" {
		return nil, NewMissingParameterError("industry")
	}

	return s.repo.YearTotals(ctx, industry)
}

func (s *Service) TimeSeries(ctx context.Context, industry string) ([]domain.TimeSeriesPoint, error) {
	if industry == "" {
		return nil, NewMissingParameterError("industry")
	}

	return s.repo.TimeSeries(ctx, industry, timeSeriesLimit)
}

func (s *Service) MonthTotalsByIndustry(ctx context.Context, industry, financialYear string) ([]domain.MonthTotal, error) {
	if industry == "" {
		return nil, NewMissingParameterError("industry")
	}

	// "all" (or nothing) means every financial year, never an error
	if financialYear == AllYears {
		financialYear = ""
	}

	return s.repo.MonthTotalsByIndustry(ctx, industry, financialYear)
}

func (s *Service) MonthTotalsByDivision(ctx context.Context, division, financialYear string) ([]domain.MonthTotal, error) {
	if division == "" || financialYear == "" {
		return nil, NewMissingParameterError("division", "financial_year")
	}

	return s.repo.MonthTotalsByDivision(ctx, division, financialYear)
}

func (s *Service) PageReadings(ctx context.Context, page, pageSize int) (*domain.PagedReadings, error) {
	if page < 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	offset := page * pageSize

	// the count is a separate query, recomputed per request
	total, err := s.repo.CountReadings(ctx)
	if err != nil {
		return nil, err
	}

	readings, err := s.repo.ListReadings(ctx, uint64(offset), uint64(pageSize))
	if err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &domain.PagedReadings{
		Data:               readings,
		Total:              total,
		Page:               page,
		PageSize:           pageSize,
		HasMore:            (page+1)*pageSize < total,
		TotalPages:         totalPages,
		CurrentPageRecords: len(readings),
	}, nil
}

func (s *Service) AllReadings(ctx context.Context) ([]domain.MeterReading, error) {
	return s.repo.ListAllReadings(ctx, allReadingsLimit)
}

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *Service) CheckDatabase(ctx context.Context) (*domain.DBStatus, error) {
	now, version, err := s.repo.ServerInfo(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DBStatus{
		Status:          "Database connection successful",
		CurrentTime:     now,
		DatabaseVersion: version,
	}, nil
}
