package commands

import (
	"context"
	"fmt"
	"math/rand/v2"

	"nexye/internal/core/ports"
)

// SendOtpCommandHandler generates a 4-digit one-time password, stores
// it keyed by email and hands it to the mailer. The store bounds the
// code's lifetime; a later VerifyOtp consumes it.
type SendOtpCommandHandler struct {
	store    ports.OTPStore
	mailer   ports.OTPMailer
	generate func() string
}

// NewSendOtpCommandHandler creates the handler with the default random
// code generator.
func NewSendOtpCommandHandler(store ports.OTPStore, mailer ports.OTPMailer) SendOtpCommandHandler {
	return SendOtpCommandHandler{
		store:    store,
		mailer:   mailer,
		generate: randomCode,
	}
}

// Handle stores a fresh code for the email and sends it. A previous
// unconsumed code for the same email is replaced.
func (h *SendOtpCommandHandler) Handle(ctx context.Context, cmd SendOtpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code := h.generate()
	if err := h.store.Save(ctx, cmd.Email(), code); err != nil {
		return err
	}
	return h.mailer.SendOTP(ctx, cmd.Email(), code)
}

// randomCode returns a 4-digit code in [1000, 9999].
func randomCode() string {
	return fmt.Sprintf("%d", 1000+rand.IntN(9000))
}
