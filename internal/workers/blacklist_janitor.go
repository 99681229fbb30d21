// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
)

// purgeTimeout bounds a single purge pass against the database.
const purgeTimeout = time.Minute

// blacklistJanitor periodically removes expired entries from the refresh
// token blacklist. An expired entry is dead weight: the token it names can
// no longer pass signature validation, so revocation no longer needs it.
type blacklistJanitor struct {
	blacklist store.TokenBlacklistRepository
	interval  time.Duration
	logger    *logger.Logger

	stop chan struct{}
	done chan struct{}
}

func newBlacklistJanitor(blacklist store.TokenBlacklistRepository, interval time.Duration, logger *logger.Logger) *blacklistJanitor {
	return &blacklistJanitor{
		blacklist: blacklist,
		interval:  interval,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Run starts the purge loop in its own goroutine and returns immediately.
func (j *blacklistJanitor) Run() {
	j.logger.Info().Dur("interval", j.interval).Msg("starting token blacklist janitor")
	go j.loop()
}

// Stop terminates the purge loop and waits for the current pass to finish.
func (j *blacklistJanitor) Stop() {
	close(j.stop)
	<-j.done
	j.logger.Info().Msg("token blacklist janitor stopped")
}

func (j *blacklistJanitor) loop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			j.purge()
		}
	}
}

func (j *blacklistJanitor) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	deleted, err := j.blacklist.PurgeExpired(ctx)
	if err != nil {
		j.logger.Err(err).Msg("purging expired blacklist entries")
		return
	}

	if deleted > 0 {
		j.logger.Info().Int64("deleted", deleted).Msg("purged expired blacklist entries")
	}
}
