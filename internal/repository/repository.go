// Package repository declares the storage contracts shared by the MongoDB and
// in-memory backends.
package repository

import (
	"context"
	"errors"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

// ErrStateNotFound is returned when no homestead document has been saved yet.
var ErrStateNotFound = errors.New("homestead state not found")

// StateRepository loads and saves the single homestead document.
type StateRepository interface {
	LoadState(ctx context.Context) (models.HomesteadState, error)
	SaveState(ctx context.Context, state models.HomesteadState) error
}

// SnapshotRepository keeps the weekly plan snapshots.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot models.PlanSnapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]models.PlanSnapshot, error)
}
