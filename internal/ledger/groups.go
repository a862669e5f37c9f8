package ledger

import (
	"context"
	"strings"

	"github.com/mmynk/groupsplit/internal/apperr"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// CreateGroup persists a new group. Names are unique across the store.
func (l *Ledger) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("group name is required")
	}

	group := &models.Group{Name: name}
	err := l.store.InTx(ctx, func(s storage.Session) error {
		existing, err := s.FindGroupByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("group with name %q already exists", name)
		}
		return s.CreateGroup(ctx, group)
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

// GetGroup retrieves one group.
func (l *Ledger) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	var group *models.Group
	err := l.store.InTx(ctx, func(s storage.Session) error {
		var err error
		group, err = requireGroup(ctx, s, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// ListGroups returns every group, newest first.
func (l *Ledger) ListGroups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	err := l.store.InTx(ctx, func(s storage.Session) error {
		var err error
		groups, err = s.ListGroups(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// DeleteGroup removes a group and everything under it.
//
// The cascade is explicit and ordered (shares, expenses, members, group)
// inside one transaction; it does not rely on foreign-key cascades.
func (l *Ledger) DeleteGroup(ctx context.Context, groupID int64) error {
	return l.store.InTx(ctx, func(s storage.Session) error {
		if _, err := requireGroup(ctx, s, groupID); err != nil {
			return err
		}

		expenseIDs, err := s.ListExpenseIDs(ctx, groupID)
		if err != nil {
			return err
		}
		if err := s.DeleteSharesByExpenses(ctx, expenseIDs); err != nil {
			return err
		}
		if err := s.DeleteExpensesByGroup(ctx, groupID); err != nil {
			return err
		}
		if err := s.DeleteMembersByGroup(ctx, groupID); err != nil {
			return err
		}
		return s.DeleteGroup(ctx, groupID)
	})
}
