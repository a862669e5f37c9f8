// Package ledger implements group, member and expense management and the
// balance computation on top of a storage.Store.
//
// Every exported operation runs in exactly one store transaction and either
// applies completely or not at all. Failures are reported as *apperr.Error
// (NotFound, Conflict, InvalidInput); anything else is a store failure.
package ledger

import (
	"context"

	"github.com/mmynk/groupsplit/internal/apperr"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// Ledger is the entry point for every group, member and expense operation.
type Ledger struct {
	store storage.Store
}

// New creates a Ledger backed by store.
func New(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// requireGroup loads a group or fails with NotFound.
func requireGroup(ctx context.Context, s storage.Session, groupID int64) (*models.Group, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperr.NotFound("group not found: %d", groupID)
	}
	return group, nil
}
