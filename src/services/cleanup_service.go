package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// CleanupService periodically deletes expired session rows. Purely
// housekeeping: session validation already filters by expiry at read time.
type CleanupService struct {
	sessions *SessionService
	enabled  bool
	interval time.Duration
	done     chan bool
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessions *SessionService, enabled bool, interval time.Duration) *CleanupService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CleanupService{
		sessions: sessions,
		enabled:  enabled,
		interval: interval,
		done:     make(chan bool),
	}
}

// Start starts the cleanup loop
func (cs *CleanupService) Start(ctx context.Context) {
	if !cs.enabled {
		log.Info().Msg("session cleanup disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-cs.done:
				return
			case <-ticker.C:
				cs.sweep(ctx)
			}
		}
	}()

	log.Info().Dur("interval", cs.interval).Msg("session cleanup started")
}

// Stop stops the cleanup loop. Safe to call when the loop never started.
func (cs *CleanupService) Stop() {
	select {
	case cs.done <- true:
	default:
	}
}

func (cs *CleanupService) sweep(ctx context.Context) {
	deleted, err := cs.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("session cleanup failed")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("expired sessions removed")
	}
}
