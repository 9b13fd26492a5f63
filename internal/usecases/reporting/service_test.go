package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/watergrid/meter-analytics-api/infrastructure/repository/mocks"
	"github.com/watergrid/meter-analytics-api/internal/domain"
)

func TestDivisionDisplayName(t *testing.T) {
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
			name:     "Code without prefix is kept verbatim",
			input:    "Central",
			expected: "Central",
		},
		{
			name:     "Prefix-only code falls back to the raw value",
			input:    "EE_",
			expected: "EE_",
		},
		{
			name:     "Lowercase prefix is not a scheme prefix",
			input:    "ee_south",
			expected: "ee_south",
		},
		{
			name:     "Only the leading prefix is removed",
			input:    "WB_North_WB_Annex",
			expected: "North_WB_Annex",
		},
		{
			name:     "Empty code stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DivisionDisplayName(tt.input))
		})
	}
}

func TestService_ListDivisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMeterReadingRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		ListDivisionIDs(gomock.Any()).
		Return([]string{"EE_Adava", "Central"}, nil)

	options, err := service.ListDivisions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.DimensionOption{
		{ID: "EE_Adava", Name: "Adava"},
		{ID: "Central", Name: "Central"},
	}, options)
}

func TestService_ListMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMeterReadingRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		ListMonthIDs(gomock.Any()).
		Return([]int{1, 12}, nil)

	options, err := service.ListMonths(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.DimensionOption{
		{ID: "1", Name: "Month 1"},
		{ID: "12", Name: "Month 12"},
	}, options)
}

func TestService_RequiredParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMeterReadingRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()

	tests := []struct {
		name        string
		call        func() error
		expectedMsg string
	}{
		{
			name: "Industry totals without both parameters",
			call: func() error {
				_, err := service.IndustryTotals(ctx, "", "")
				return err
			},
			expectedMsg: "Missing required parameters: division and financial_year",
		},
		{
			name: "Industry totals with only a division",
			call: func() error {
				_, err := service.IndustryTotals(ctx, "EE_Adava", "")
				return err
			},
			expectedMsg: "Missing required parameters: division and financial_year",
		},
		{
			name: "Division totals without a year",
			call: func() error {
				_, err := service.DivisionTotals(ctx, "")
				return err
			},
			expectedMsg: "Missing required parameter: financial_year",
		},
		{
			name: "Year totals without an industry",
			call: func() error {
				_, err := service.YearTotals(ctx, "")
				return err
			},
			expectedMsg: "Missing required parameter: industry",
		},
		{
			name: "Time series without an industry",
			call: func() error {
				_, err := service.TimeSeries(ctx, "")
				return err
			},
			expectedMsg: "Missing required parameter: industry",
		},
		{
			name: "Month totals by industry without an industry",
			call: func() error {
				_, err := service.MonthTotalsByIndustry(ctx, "", "2023-2024")
				return err
			},
			expectedMsg: "Missing required parameter: industry",
		},
		{
			name: "Month totals by division without both parameters",
			call: func() error {
				_, err := service.MonthTotalsByDivision(ctx, "", "")
				return err
			},
			expectedMsg: "Missing required parameters: division and financial_year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			assert.Error(t, err)
			assert.True(t, IsMissingParameter(err))
			assert.Equal(t, tt.expectedMsg, err.Error())
		})
	}
}

func TestService_MonthTotalsByIndustry_AllYears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMeterReadingRepository(ctrl)
	service := NewService(mockRepo)

	rows := []domain.MonthTotal{{MonthID: 1, MonthName: "January", TotalDiff: 10.5}}

	tests := []struct {
		name          string
		financialYear string
		repoYear      string
	}{
		{
			name:          "The all sentinel drops the year restriction",
			financialYear: "all",
			repoYear:      "",
		},
		{
			name:          "An empty year already means no restriction",
			financialYear: "",
			repoYear:      "",
		},
		{
			name:          "A concrete year is passed through",
			financialYear: "2023-2024",
			repoYear:      "2023-2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				MonthTotalsByIndustry(gomock.Any(), "Textiles", tt.repoYear).
				Return(rows, nil)

			result, err := service.MonthTotalsByIndustry(context.Background(), "Textiles", tt.financialYear)

			assert.NoError(t, err)
			assert.Equal(t, rows, result)
		})
	}
}

func TestService_PageReadings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMeterReadingRepository(ctrl)
	service := NewService(mockRepo)

	readings := func(n int) []domain.MeterReading {
		rs := make([]domain.MeterReading, n)
		for i := range rs {
			rs[i].MonthID = i + 1
		}
		return rs
	}

	tests := []struct {
		name       string
		page       int
		pageSize   int
		total      int
		offset     uint64
		limit      uint64
		returned   int
		hasMore    bool
		totalPages int
	}{
		{
			name:       "First page of many",
			page:       0,
			pageSize:   20,
			total:      45,
			offset:     0,
			limit:      20,
			returned:   20,
			hasMore:    true,
			totalPages: 3,
		},
		{
			name:       "Last partial page",
			page:       2,
			pageSize:   20,
			total:      45,
			offset:     40,
			limit:      20,
			returned:   5,
			hasMore:    false,
			totalPages: 3,
		},
		{
			name:       "Exact fit on the final page",
			page:       1,
			pageSize:   20,
			total:      40,
			offset:     20,
			limit:      20,
			returned:   20,
			hasMore:    false,
			totalPages: 2,
		},
		{
			name:       "Negative page falls back to the first",
			page:       -3,
			pageSize:   10,
			total:      25,
			offset:     0,
			limit:      10,
			returned:   10,
			hasMore:    true,
			totalPages: 3,
		},
		{
			name:       "Zero page size falls back to the default",
			page:       0,
			pageSize:   0,
			total:      45,
			offset:     0,
			limit:      20,
			returned:   20,
			hasMore:    true,
			totalPages: 3,
		},
		{
			name:       "Empty table",
			page:       0,
			pageSize:   20,
			total:      0,
			offset:     0,
			limit:      20,
			returned:   0,
			hasMore:    false,
			totalPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				CountReadings(gomock.Any()).
				Return(tt.total, nil)
			mockRepo.EXPECT().
				ListReadings(gomock.Any(), tt.offset, tt.limit).
				Return(readings(tt.returned), nil)

			result, err := service.PageReadings(context.Background(), tt.page, tt.pageSize)

			assert.NoError(t, err)
			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.hasMore, result.HasMore)
			assert.Equal(t, tt.totalPages, result.TotalPages)
			assert.Equal(t, tt.returned, result.CurrentPageRecords)
			assert.Len(t, result.Data, tt.returned)
		})
	}
}

func TestService_PageReadings_CountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMeterReadingRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().
		CountReadings(gomock.Any()).
		Return(0, assert.AnError)

	result, err := service.PageReadings(context.Background(), 0, 20)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_CheckDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMeterReadingRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Reachable database reports success", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			ServerInfo(gomock.Any()).
			Return(now, "PostgreSQL 16.2", nil)

		status, err := service.CheckDatabase(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "Database connection successful", status.Status)
		assert.Equal(t, now, status.CurrentTime)
		assert.Equal(t, "PostgreSQL 16.2", status.DatabaseVersion)
	})

	t.Run("Unreachable database surfaces the error", func(t *testing.T) {
		mockRepo.EXPECT().
			ServerInfo(gomock.Any()).
			Return(time.Time{}, "", assert.AnError)

		status, err := service.CheckDatabase(context.Background())

		assert.Error(t, err)
		assert.Nil(t, status)
	})
}
