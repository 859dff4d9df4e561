package scheduler

import (
	"log"
	"time"

	"todolist-api/internal/auth/repository"
)

// TokenReaper periodically deletes refresh tokens that expired long enough
// ago to be useless even as an audit trail. Tokens revoked by rotation stay
// until their expiry passes the retention window.
type TokenReaper struct {
	tokenRepo repository.RefreshTokenRepository
	interval  time.Duration
	retention time.Duration
	stopChan  chan struct{}
}

// NewTokenReaper creates a new reaper sweeping every interval and keeping
// expired tokens around for retention before deletion.
func NewTokenReaper(tokenRepo repository.RefreshTokenRepository, interval, retention time.Duration) *TokenReaper {
	return &TokenReaper{
		tokenRepo: tokenRepo,
		interval:  interval,
		retention: retention,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the reaper loop
func (s *TokenReaper) Start() {
	log.Printf("[TokenReaper] Starting refresh-token reaper (interval: %s, retention: %s)", s.interval, s.retention)

	go func() {
		// Run immediately on start
		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				log.Println("[TokenReaper] Reaper stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the reaper
func (s *TokenReaper) Stop() {
	close(s.stopChan)
}

func (s *TokenReaper) sweep() {
	cutoff := time.Now().Add(-s.retention)

	deleted, err := s.tokenRepo.DeleteExpiredBefore(cutoff)
	if err != nil {
		log.Printf("[TokenReaper] Error deleting expired tokens: %v", err)
		return
	}

	if deleted > 0 {
		log.Printf("[TokenReaper] Deleted %d expired refresh tokens", deleted)
	}
}
