package commands

import (
	"context"
	"crypto/subtle"

	"nexye/internal/core/ports"
	"nexye/internal/pkg/errs"
)

// SessionIssuer mints a signed session token for a verified email.
type SessionIssuer interface {
	Issue(email string) (string, error)
}

// VerifyOtpResult carries the session token issued on a successful
// verification.
type VerifyOtpResult struct {
	Token string
}

// VerifyOtpCommandHandler compares the submitted code with the stored
// one, consumes it on match and issues a session token.
type VerifyOtpCommandHandler struct {
	store    ports.OTPStore
	sessions SessionIssuer
}

// NewVerifyOtpCommandHandler creates the handler.
func NewVerifyOtpCommandHandler(store ports.OTPStore, sessions SessionIssuer) VerifyOtpCommandHandler {
	return VerifyOtpCommandHandler{
		store:    store,
		sessions: sessions,
	}
}

// Handle verifies the code. A store miss (expired or never sent) and a
// mismatch are indistinguishable to the caller. The code is deleted
// once matched, so each code verifies at most once.
func (h *VerifyOtpCommandHandler) Handle(ctx context.Context, cmd VerifyOtpCommand) (VerifyOtpResult, error) {
	if err := cmd.Validate(); err != nil {
		return VerifyOtpResult{}, err
	}

	stored, err := h.store.Load(ctx, cmd.Email())
	if err != nil {
		return VerifyOtpResult{}, errs.NewValidationError("Invalid or expired OTP")
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(cmd.Code())) != 1 {
		return VerifyOtpResult{}, errs.NewValidationError("Invalid or expired OTP")
	}

	if err = h.store.Delete(ctx, cmd.Email()); err != nil {
		return VerifyOtpResult{}, err
	}

	token, err := h.sessions.Issue(cmd.Email())
	if err != nil {
		return VerifyOtpResult{}, err
	}
	return VerifyOtpResult{Token: token}, nil
}
