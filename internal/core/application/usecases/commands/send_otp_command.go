package commands

import (
	"strings"

	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrSendOtpCommandIsNotConstructed is returned when a SendOtpCommand
// was not created via NewSendOtpCommand.
var ErrSendOtpCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"SendOtpCommand must be created via NewSendOtpCommand constructor")

// SendOtpCommand requests a one-time password for the given email.
type SendOtpCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewSendOtpCommand creates the command. The email must be non-empty
// and carry an @; anything stricter is left to the mail provider.
func NewSendOtpCommand(email string) (SendOtpCommand, error) {
	cleaned := strings.TrimSpace(strings.ToLower(email))
	if cleaned == "" || !strings.Contains(cleaned, "@") {
		return SendOtpCommand{}, errs.NewValidationError("A valid email is required")
	}

	return SendOtpCommand{
		email: cleaned,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOtpCommand) Validate() error {
	return c.guard.Validate(ErrSendOtpCommandIsNotConstructed)
}

// Email returns the normalized recipient address.
func (c SendOtpCommand) Email() string {
	return c.email
}
