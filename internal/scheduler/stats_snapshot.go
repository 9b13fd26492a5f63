// Package scheduler contains the background jobs of the service
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/watergrid/meter-analytics-api/internal/config"
	"github.com/watergrid/meter-analytics-api/internal/usecases/reporting"
)

type StatsSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// StatsSnapshotService periodically logs the table aggregates so operators
// get the same visibility /stats gives the dashboard, without polling it.
type StatsSnapshotService struct {
	scheduler           *gocron.Scheduler
	reportService       reporting.Reporter
	config              StatsSnapshotConfig
	snapshotRunning     bool
	snapshotMutex       sync.Mutex
	lastSnapshotStarted time.Time
}

func NewStatsSnapshotService(
	reportService reporting.Reporter,
	cfg *config.Config,
) *StatsSnapshotService {
	snapshotConfig := StatsSnapshotConfig{
		CronSchedule: cfg.StatsSnapshot.CronSchedule,
		Enabled:      cfg.StatsSnapshot.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("stats snapshot scheduler configured")

	return &StatsSnapshotService{
		scheduler:     scheduler,
		reportService: reportService,
		config:        snapshotConfig,
	}
}

func (s *StatsSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("stats snapshot job disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting stats snapshot job")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.TakeSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("stats snapshot failed")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling stats snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping stats snapshot scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TakeSnapshot runs the aggregates once and logs them. Overlapping runs are
// skipped.
func (s *StatsSnapshotService) TakeSnapshot(ctx context.Context) error {
	s.snapshotMutex.Lock()
	if s.snapshotRunning {
		s.snapshotMutex.Unlock()
		logrus.Warn("stats snapshot already running")
		return nil
	}
	s.snapshotRunning = true
	s.lastSnapshotStarted = time.Now()
	s.snapshotMutex.Unlock()

	defer func() {
		s.snapshotMutex.Lock()
		s.snapshotRunning = false
		s.snapshotMutex.Unlock()
	}()

	stats, err := s.reportService.Stats(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"total_records":     stats.TotalRecords,
		"unique_industries": stats.UniqueIndustries,
		"unique_divisions":  stats.UniqueDivisions,
		"unique_months":     stats.UniqueMonths,
		"total_difference":  stats.TotalDifference,
	}).Info("stats snapshot")

	return nil
}
