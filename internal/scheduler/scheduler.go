package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/merchops/merch-service/internal/config"
	"github.com/merchops/merch-service/internal/service"
	"github.com/merchops/merch-service/internal/utils/email"
)

// Scheduler runs the periodic dashboard jobs: the morning cash digest and a
// staleness check on the rate table
type Scheduler struct {
	cron   *cron.Cron
	svc    *service.Service
	sender *email.Sender
	log    *logrus.Logger
	cfg    *config.Config
}

// New initializes the scheduler
func New(svc *service.Service, sender *email.Sender, log *logrus.Logger, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		sender: sender,
		log:    log,
		cfg:    cfg,
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.DigestSchedule, s.runDigest); err != nil {
		return fmt.Errorf("failed to schedule digest: %w", err)
	}
	if _, err := s.cron.AddFunc("@hourly", s.checkRates); err != nil {
		return fmt.Errorf("failed to schedule rate check: %w", err)
	}
	s.cron.Start()
	s.log.Infof("Scheduler started, digest at %q", s.cfg.DigestSchedule)
	return nil
}

// Stop stops the cron loop
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// runDigest recomputes the snapshot and forecast and mails them out
func (s *Scheduler) runDigest() {
	if s.cfg.DigestRecipient == "" || s.cfg.SMTPHost == "" {
		s.log.Debug("Digest recipient or SMTP not configured, skipping")
		return
	}
	now := time.Now()
	snap := s.svc.Snapshot(now)
	buckets := s.svc.Forecast(now)
	if err := s.sender.SendCashDigest(s.cfg.DigestRecipient, now, snap, buckets); err != nil {
		s.log.Errorf("Failed to send cash digest: %v", err)
	}
}

// checkRates warns when the rate table is missing or stale
func (s *Scheduler) checkRates() {
	loadedAt, ok := s.svc.RatesLoadedAt()
	if !ok {
		s.log.Warn("No rate table loaded, foreign amounts convert at face value")
		return
	}
	if age := time.Since(loadedAt); age > s.cfg.RateStaleAfter {
		s.log.Warnf("Rate table is %s old, forecasts may be skewed", age.Round(time.Hour))
	}
}
