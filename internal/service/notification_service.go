package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/kwon0144/HarborHub/config"
)

// Notification outcomes. Delivery is best effort: an enrollment is
// never rolled back because its confirmation email failed.
const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// EnrollmentNotice carries the details of a confirmed enrollment for
// the confirmation email.
type EnrollmentNotice struct {
	To           string
	FirstName    string
	LastName     string
	ActivityCode string
	ActivityName string
	ActivityType string
	Description  string
	Date         string
	Time         string
	Location     string
	Address      string
}

// Notifier sends enrollment confirmations. Implementations report an
// outcome instead of failing the caller.
type Notifier interface {
	SendEnrollmentConfirmation(ctx context.Context, notice EnrollmentNotice) string
}

// smtpSender is the slice of gomail.Dialer we use, extracted so tests
// can fake delivery.
type smtpSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type mailNotifier struct {
	cfg    *config.MailConfig
	sender smtpSender
	logger *zap.Logger
}

// NewNotifier builds the SMTP notifier. When mail credentials are
// absent the notifier still works but reports every send as skipped.
func NewNotifier(cfg *config.MailConfig, logger *zap.Logger) Notifier {
	n := &mailNotifier{cfg: cfg, logger: logger}
	if cfg.Configured() {
		n.sender = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)
	}
	return n
}

func (n *mailNotifier) SendEnrollmentConfirmation(ctx context.Context, notice EnrollmentNotice) string {
	if n.sender == nil {
		n.logger.Info("confirmation email skipped, mail not configured",
			zap.String("activityCode", notice.ActivityCode))
		return OutcomeSkipped
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", notice.To)
	m.SetHeader("Subject", fmt.Sprintf("You're enrolled: %s", notice.ActivityName))
	m.SetBody("text/html", enrollmentBody(notice))

	done := make(chan error, 1)
	go func() { done <- n.sender.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		n.logger.Warn("confirmation email timed out",
			zap.String("activityCode", notice.ActivityCode))
		return OutcomeFailed
	case err := <-done:
		if err != nil {
			n.logger.Warn("confirmation email failed",
				zap.String("activityCode", notice.ActivityCode), zap.Error(err))
			return OutcomeFailed
		}
	}

	n.logger.Info("confirmation email sent",
		zap.String("activityCode", notice.ActivityCode))
	return OutcomeSent
}

func enrollmentBody(notice EnrollmentNotice) string {
	where := notice.Location
	if notice.Address != "" {
		where = fmt.Sprintf("%s (%s)", notice.Location, notice.Address)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s %s,</p>\n", notice.FirstName, notice.LastName)
	fmt.Fprintf(&b, "<p>Your enrollment in <strong>%s</strong> (%s) is confirmed.</p>\n<ul>\n", notice.ActivityName, notice.ActivityCode)
	fmt.Fprintf(&b, "  <li>Date: %s</li>\n", longDate(notice.Date))
	fmt.Fprintf(&b, "  <li>Time: %s</li>\n", notice.Time)
	fmt.Fprintf(&b, "  <li>Location: %s</li>\n", where)
	if notice.ActivityType != "" {
		fmt.Fprintf(&b, "  <li>Type: %s</li>\n", notice.ActivityType)
	}
	b.WriteString("</ul>\n")
	if notice.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", notice.Description)
	}
	b.WriteString("<p>We look forward to seeing you there.</p>\n<p>— The Harbor Hub team</p>")
	return b.String()
}

// longDate renders 2025-08-01 as "Friday, 1 August 2025", falling back
// to the raw value when the date does not parse.
func longDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, 2 January 2006")
}
