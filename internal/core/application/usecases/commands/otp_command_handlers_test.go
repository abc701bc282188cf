package commands_test

import (
	"context"
	"testing"

	"nexye/internal/core/application/usecases/commands"
	"nexye/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOTPStore struct{ mock.Mock }

func (m *MockOTPStore) Save(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockOTPStore) Load(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockOTPStore) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockOTPMailer struct{ mock.Mock }

func (m *MockOTPMailer) SendOTP(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

type MockSessionIssuer struct{ mock.Mock }

func (m *MockSessionIssuer) Issue(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func TestSendOtpCommandHandler_Handle(t *testing.T) {
	t.Run("stores_then_mails_the_same_code", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOTPStore)
		mailer := new(MockOTPMailer)

		var storedCode string
		store.On("Save", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { storedCode = args.String(2) }).
			Return(nil).Once()
		mailer.On("SendOTP", mock.Anything, "user@example.com", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { assert.Equal(t, storedCode, args.String(2)) }).
			Return(nil).Once()

		h := commands.NewSendOtpCommandHandler(store, mailer)
		cmd, err := commands.NewSendOtpCommand("User@Example.com")
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Len(t, storedCode, 4)
		store.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("save_failure_skips_mailing", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOTPStore)
		mailer := new(MockOTPMailer)
		store.On("Save", mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError).Once()

		h := commands.NewSendOtpCommandHandler(store, mailer)
		cmd, err := commands.NewSendOtpCommand("user@example.com")
		require.NoError(t, err)

		require.Error(t, h.Handle(ctx, cmd))
		mailer.AssertNotCalled(t, "SendOTP", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects_invalid_email", func(t *testing.T) {
		_, err := commands.NewSendOtpCommand("not-an-email")
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestVerifyOtpCommandHandler_Handle(t *testing.T) {
	newCmd := func(t *testing.T, email, code string) commands.VerifyOtpCommand {
		t.Helper()
		cmd, err := commands.NewVerifyOtpCommand(email, code)
		require.NoError(t, err)
		return cmd
	}

	t.Run("matching_code_issues_session_and_consumes_code", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOTPStore)
		sessions := new(MockSessionIssuer)
		mock.InOrder(
			store.On("Load", mock.Anything, "user@example.com").Return("4821", nil).Once(),
			store.On("Delete", mock.Anything, "user@example.com").Return(nil).Once(),
			sessions.On("Issue", "user@example.com").Return("session-token", nil).Once(),
		)

		h := commands.NewVerifyOtpCommandHandler(store, sessions)
		result, err := h.Handle(ctx, newCmd(t, "user@example.com", "4821"))

		require.NoError(t, err)
		assert.Equal(t, "session-token", result.Token)
		store.AssertExpectations(t)
		sessions.AssertExpectations(t)
	})

	t.Run("wrong_code_is_rejected", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOTPStore)
		sessions := new(MockSessionIssuer)
		store.On("Load", mock.Anything, "user@example.com").Return("4821", nil).Once()

		h := commands.NewVerifyOtpCommandHandler(store, sessions)
		_, err := h.Handle(ctx, newCmd(t, "user@example.com", "0000"))

		require.ErrorIs(t, err, errs.ErrValidation)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		sessions.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("store_miss_is_rejected", func(t *testing.T) {
		ctx := context.Background()
		store := new(MockOTPStore)
		sessions := new(MockSessionIssuer)
		store.On("Load", mock.Anything, "user@example.com").
			Return("", assert.AnError).Once()

		h := commands.NewVerifyOtpCommandHandler(store, sessions)
		_, err := h.Handle(ctx, newCmd(t, "user@example.com", "4821"))

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_malformed_code", func(t *testing.T) {
		_, err := commands.NewVerifyOtpCommand("user@example.com", "12a4")
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
