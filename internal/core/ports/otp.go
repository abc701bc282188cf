package ports

import "context"

// OTPStore holds one-time passwords keyed by email with a bounded
// lifetime. Implementations expire entries on their own; Load after
// expiry behaves like a miss.
type OTPStore interface {
	// Save stores the code for the email, replacing any previous one.
	Save(ctx context.Context, email, code string) error

	// Load returns the stored code, or an error on miss/expiry.
	Load(ctx context.Context, email string) (string, error)

	// Delete removes the code once consumed.
	Delete(ctx context.Context, email string) error
}

// OTPMailer delivers a one-time password to the user. Delivery
// mechanics are outside this core; implementations only honor the
// send contract.
type OTPMailer interface {
	SendOTP(ctx context.Context, email, code string) error
}
