package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"nexye/internal/core/ports"
)

// TokenWarmupJob keeps the carrier token cache warm. Runs every hour so
// a token near the 10-day expiry is refreshed in the background instead
// of on a customer's order.
type TokenWarmupJob struct {
	tokens ports.TokenProvider
	cron   *cron.Cron
	logger *slog.Logger
}

// NewTokenWarmupJob creates the warm-up job.
func NewTokenWarmupJob(tokens ports.TokenProvider, logger *slog.Logger) *TokenWarmupJob {
	return &TokenWarmupJob{
		tokens: tokens,
		cron:   cron.New(),
		logger: logger.With("component", "token_warmup_job"),
	}
}

// Start begins the warm-up job, running hourly after an immediate
// first refresh.
func (j *TokenWarmupJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", j.warm)
	if err != nil {
		return err
	}

	// Warm once at startup so the first order never pays the login.
	go j.warm()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token warm-up job started (running hourly)")
	return nil
}

// Stop stops the warm-up job.
func (j *TokenWarmupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token warm-up job stopped")
}

func (j *TokenWarmupJob) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := j.tokens.Token(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Token warm-up failed", "error", err)
	}
}
