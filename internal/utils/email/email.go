package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/Dan9191/gig-score/internal/config"
	"github.com/Dan9191/gig-score/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
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

// SendWelcome greets a newly registered user
func (s *Sender) SendWelcome(to, name string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to Gig-Score"
	e.Text = []byte(welcomeBody(name))
	return s.send(e)
}

// SendScoreReport mails the summary of a freshly computed score
func (s *Sender) SendScoreReport(to, name string, snapshot *models.Snapshot) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your Gig-Score: %d", snapshot.ScoreData.Score)
	e.Text = []byte(scoreReportBody(name, snapshot))
	return s.send(e)
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %v: %v", e.To, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %v: %s", e.To, e.Subject)
	return nil
}

func welcomeBody(name string) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your Gig-Score account is ready.\n"+
			"Link your UPI ID and gig platforms to get your score.\n"+
			"\nBest regards,\nGig-Score", name)
}

func scoreReportBody(name string, snap *models.Snapshot) string {
	f := snap.ScoreData.Factors
	body := fmt.Sprintf("Dear %s,\n\n", name)
	body += fmt.Sprintf(
		"Your Gig-Score is %d/%d (%s).\n"+
			"Generated at: %s\n\n"+
			"Transaction frequency: %d%%\n"+
			"Income consistency: %d%%\n"+
			"Platform rating: %d%%\n"+
			"Account tenure: %d%%\n\n"+
			"Average monthly income: %d INR across %d transactions.\n",
		snap.ScoreData.Score, snap.ScoreData.MaxScore, snap.ScoreData.Band,
		snap.GeneratedAt.Format(time.RFC1123),
		f.TransactionFrequency, f.IncomeConsistency, f.PlatformRating, f.AccountTenure,
		snap.UPIData.Analysis.AverageMonthlyIncome, snap.UPIData.Analysis.TotalTransactions,
	)
	body += "\nBest regards,\nGig-Score"
	return body
}
