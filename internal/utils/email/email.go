package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/merchops/merch-service/internal/config"
	"github.com/merchops/merch-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendCashDigest emails the day's cash position summary and the monthly
// forecast to the operator
func (s *Sender) SendCashDigest(to string, asOf time.Time, snap models.Snapshot, buckets []models.MonthBucket) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Cash Position Digest for %s", asOf.Format("2006-01-02"))

	base := s.cfg.BaseCurrency
	body := fmt.Sprintf("Cash position as of %s (all figures in %s)\n\n", asOf.Format("2006-01-02"), base)
	body += fmt.Sprintf(
		"This week:  in %s, out %s\n"+
			"This month: in %s, out %s\n",
		snap.WeekIn.StringFixed(2), snap.WeekOut.StringFixed(2),
		snap.MonthIn.StringFixed(2), snap.MonthOut.StringFixed(2),
	)

	if len(buckets) > 0 {
		body += "\nMonthly forecast:\n"
		for _, b := range buckets {
			body += fmt.Sprintf(
				"  %-9s  in %14s  out %14s  balance %14s\n",
				b.Label, b.Inflow.StringFixed(2), b.Outflow.StringFixed(2), b.RunningBalance.StringFixed(2),
			)
		}
	}
	body += "\nBest regards,\nMerch Ops"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send digest to %s: %v", to, err)
		return fmt.Errorf("failed to send digest: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
