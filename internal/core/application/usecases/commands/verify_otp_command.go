package commands

import (
	"regexp"
	"strings"

	"nexye/internal/pkg/errs"
	"nexye/internal/pkg/guard"
)

// ErrVerifyOtpCommandIsNotConstructed is returned when a
// VerifyOtpCommand was not created via NewVerifyOtpCommand.
var ErrVerifyOtpCommandIsNotConstructed = errs.NewValueIsRequiredError(
	"VerifyOtpCommand must be created via NewVerifyOtpCommand constructor")

var otpPattern = regexp.MustCompile(`^\d{4}$`)

// VerifyOtpCommand checks a one-time password against the stored one.
type VerifyOtpCommand struct { //nolint:recvcheck //using for validation
	email string
	code  string

	guard guard.ConstructorGuard
}

// NewVerifyOtpCommand creates the command. Codes are always 4 digits.
func NewVerifyOtpCommand(email, code string) (VerifyOtpCommand, error) {
	cleanedEmail := strings.TrimSpace(strings.ToLower(email))
	if cleanedEmail == "" || !strings.Contains(cleanedEmail, "@") {
		return VerifyOtpCommand{}, errs.NewValidationError("A valid email is required")
	}

	cleanedCode := strings.TrimSpace(code)
	if !otpPattern.MatchString(cleanedCode) {
		return VerifyOtpCommand{}, errs.NewValidationError("OTP must be a 4-digit code")
	}

	return VerifyOtpCommand{
		email: cleanedEmail,
		code:  cleanedCode,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOtpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOtpCommandIsNotConstructed)
}

// Email returns the normalized address under verification.
func (c VerifyOtpCommand) Email() string {
	return c.email
}

// Code returns the submitted 4-digit code.
func (c VerifyOtpCommand) Code() string {
	return c.code
}
