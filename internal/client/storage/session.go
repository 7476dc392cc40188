package storage

import "context"

//go:generate moq -out session_mock.go . SessionStorage

// SessionData represents a relay session and the file binding in storage.
// GroupID is empty until the file is bound to a sync group on the relay;
// an empty GroupID means outgoing changes must not be sent yet.
type SessionData struct {
	UserID    string `json:"user_id"`    // UserID relay user identifier
	Token     string `json:"token"`      // Token opaque bearer token issued by the relay
	FileID    string `json:"file_id"`    // FileID ledger file identifier on the relay
	GroupID   string `json:"group_id"`   // GroupID sync group the file belongs to
	KeyID     string `json:"key_id"`     // KeyID active encryption key, empty if unencrypted
	ExpiresAt int64  `json:"expires_at"` // ExpiresAt unix time when the token expires
}

// SessionStorage defines interface for storing relay session data on client
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error
}
