package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled maintenance jobs: a daily donation
// report at midnight and an hourly sweep of expired refresh tokens.
type CronService struct {
	cron          *cron.Cron
	reportService *ReportService
	authService   *AuthService
}

// NewCronService creates a new cron service
func NewCronService(reportService *ReportService, authService *AuthService) *CronService {
	return &CronService{
		cron:          cron.New(),
		reportService: reportService,
		authService:   authService,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc("0 0 * * *", s.runDailyReport); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 * * * *", s.runTokenCleanup); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("✅ Scheduled jobs started")
	return nil
}

// Stop stops the scheduler, waiting briefly for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		log.Printf("⚠️ Scheduled jobs did not stop in time")
	}
}

func (s *CronService) runDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.reportService.Generate(ctx); err != nil {
		log.Printf("❌ Daily campaign report failed: %v", err)
	}
}

func (s *CronService) runTokenCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.authService.CleanupExpiredTokens(ctx); err != nil {
		log.Printf("❌ Expired token cleanup failed: %v", err)
	}
}
