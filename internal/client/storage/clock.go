package storage

import "context"

//go:generate moq -out clock_mock.go . ClockStorage

// ClockState represents persisted hybrid clock state.
// Restoring it on startup keeps timestamps monotonic across restarts.
type ClockState struct {
	ClientID string `json:"client_id"` // ClientID stable replica identifier
	Last     string `json:"last"`      // Last string form of the newest timestamp seen
}

// ClockStorage defines interface for persisting hybrid clock state
type ClockStorage interface {
	// SaveClock stores clock state, replacing any previous state
	SaveClock(ctx context.Context, state *ClockState) error

	// GetClock retrieves persisted clock state
	// Returns ErrClockNotFound on a fresh replica
	GetClock(ctx context.Context) (*ClockState, error)
}
