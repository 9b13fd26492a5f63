package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/watergrid/meter-analytics-api/internal/domain"
	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting/mocks"
)

func TestStatsSnapshotService_TakeSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	service := &StatsSnapshotService{
		reportService: mockService,
	}

	t.Run("Logs the aggregates once", func(t *testing.T) {
		mockService.EXPECT().
			Stats(gomock.Any()).
			Return(&domain.Stats{
				TotalRecords:     1200,
				UniqueIndustries: 14,
				UniqueDivisions:  6,
				UniqueMonths:     12,
				TotalDifference:  98765.43,
			}, nil)

		err := service.TakeSnapshot(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Surfaces a store failure", func(t *testing.T) {
		mockService.EXPECT().
			Stats(gomock.Any()).
			Return(nil, assert.AnError)

		err := service.TakeSnapshot(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestStatsSnapshotService_OverlappingRunsAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	service := &StatsSnapshotService{
		reportService: mockService,
	}

	entered := make(chan struct{})
	release := make(chan struct{})

	// exactly one Stats call: the overlapping run must bail out before
	// reaching the store
	mockService.EXPECT().
		Stats(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.Stats, error) {
			close(entered)
			<-release
			return &domain.Stats{}, nil
		}).
		Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, service.TakeSnapshot(context.Background()))
	}()

	<-entered

	// second run while the first is inside the store call
	assert.NoError(t, service.TakeSnapshot(context.Background()))

	close(release)
	wg.Wait()
}

func TestStatsSnapshotService_DisabledStartIsANoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReporter(ctrl)
	service := &StatsSnapshotService{
		scheduler:     nil,
		reportService: mockService,
		config:        StatsSnapshotConfig{Enabled: false},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// no job is scheduled and the nil scheduler is never touched
	assert.NoError(t, service.Start(ctx))
}
