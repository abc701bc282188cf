// Package mail carries the OTP delivery adapter. Actual mail transport
// lives outside this service; the portal frontend triggers delivery
// through a separate provider, so this adapter only records the send.
package mail

import (
	"context"
	"log/slog"
)

// LoggingMailer implements ports.OTPMailer by writing the send to the
// structured log. Codes are never logged.
type LoggingMailer struct {
	log *slog.Logger
}

// NewLoggingMailer creates the mailer.
func NewLoggingMailer(log *slog.Logger) *LoggingMailer {
	if log == nil {
		log = slog.Default()
	}
	return &LoggingMailer{log: log}
}

// SendOTP records that a code was issued for the email.
func (m *LoggingMailer) SendOTP(_ context.Context, email, code string) error {
	m.log.Info("otp issued", "email", email, "code_length", len(code))
	return nil
}
