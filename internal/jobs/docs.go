// Package jobs provides scheduled background tasks for the portal.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TokenWarmupJob - Runs hourly to refresh the carrier auth token
// before its 10-day expiry, so order submissions never pay the login
// round-trip.
//
// # Usage
//
//	job := jobs.NewTokenWarmupJob(tokenCache, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer job.Stop()
package jobs
