package ledger

import (
	"context"
	"strings"

	"github.com/mmynk/groupsplit/internal/apperr"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// CreateMember adds a member to a group. email may be empty; when set it must
// not be used by another member of the same group.
func (l *Ledger) CreateMember(ctx context.Context, groupID int64, name, email string) (*models.Member, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, apperr.InvalidInput("member name is required")
	}

	member := &models.Member{GroupID: groupID, Name: name, Email: email}
	err := l.store.InTx(ctx, func(s storage.Session) error {
		if _, err := requireGroup(ctx, s, groupID); err != nil {
			return err
		}

		if email != "" {
			existing, err := s.FindMemberByEmail(ctx, groupID, email)
			if err != nil {
				return err
			}
			if existing != nil {
				return apperr.Conflict("member with email %q already exists in this group", email)
			}
		}

		return s.CreateMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

// ListMembers returns a group's members, newest first.
func (l *Ledger) ListMembers(ctx context.Context, groupID int64) ([]*models.Member, error) {
	var members []*models.Member
	err := l.store.InTx(ctx, func(s storage.Session) error {
		if _, err := requireGroup(ctx, s, groupID); err != nil {
			return err
		}
		var err error
		members, err = s.ListMembers(ctx, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Store order is oldest first.
	for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
		members[i], members[j] = members[j], members[i]
	}
	return members, nil
}

// DeleteMember removes a member and the shares they owe.
//
// Expenses the member paid are kept with their payer reference cleared, so
// they stay readable and simply stop crediting anyone.
func (l *Ledger) DeleteMember(ctx context.Context, groupID, memberID int64) error {
	return l.store.InTx(ctx, func(s storage.Session) error {
		member, err := s.GetMember(ctx, memberID)
		if err != nil {
			return err
		}
		if member == nil || member.GroupID != groupID {
			return apperr.NotFound("member %d not found in group %d", memberID, groupID)
		}

		if err := s.DeleteSharesByMember(ctx, memberID); err != nil {
			return err
		}
		if err := s.ClearPayer(ctx, memberID); err != nil {
			return err
		}
		return s.DeleteMember(ctx, memberID)
	})
}
