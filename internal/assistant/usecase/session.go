package usecase

import (
	"context"
	"time"

	"financial-assistant/internal/model"
)

// getSession returns the session for id, creating it on first use.
// Session state is single-writer per session; concurrent requests for
// the same session are last-write-wins.
func (uc *implUseCase) getSession(id string) *model.SessionState {
	uc.sessionMutex.Lock()
	defer uc.sessionMutex.Unlock()

	if s, ok := uc.sessions[id]; ok {
		s.LastActive = time.Now()
		return s
	}

	now := time.Now()
	s := &model.SessionState{
		ID:         id,
		CreatedAt:  now,
		LastActive: now,
	}
	uc.sessions[id] = s
	return s
}

// cleanupExpiredSessions drops sessions idle past the configured TTL.
func (uc *implUseCase) cleanupExpiredSessions() {
	ticker := time.NewTicker(uc.cfg.SessionTTL)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-uc.cfg.SessionTTL)
		removed := 0

		uc.sessionMutex.Lock()
		for id, s := range uc.sessions {
			if s.LastActive.Before(cutoff) {
				delete(uc.sessions, id)
				removed++
			}
		}
		uc.sessionMutex.Unlock()

		if removed > 0 {
			uc.l.Infof(context.Background(), "%s: Cleaned up %d expired sessions", LogPrefixCleanupSessions, removed)
		}
	}
}
