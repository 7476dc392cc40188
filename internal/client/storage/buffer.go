package storage

import (
	"context"

	"github.com/iudanet/bookkeeper/internal/models"
)

// BufferedChange is one pending field edit awaiting the next sync.
// The list is ordered by first appearance of the field; timestamps
// are assigned at flush time, so none is stored here.
type BufferedChange struct {
	Dataset string       `json:"dataset"`
	Row     string       `json:"row"`
	Column  string       `json:"column"`
	Value   models.Value `json:"value"`
}

//go:generate moq -out buffer_mock.go . BufferStorage

// BufferStorage persists the change buffer between process runs,
// so local edits survive until a sync sends them out
type BufferStorage interface {
	// SaveBuffer replaces the persisted buffer with the given list.
	// An empty list clears the persisted state.
	SaveBuffer(ctx context.Context, changes []BufferedChange) error

	// GetBuffer returns the persisted buffer in recorded order,
	// empty if nothing is pending
	GetBuffer(ctx context.Context) ([]BufferedChange, error)
}
