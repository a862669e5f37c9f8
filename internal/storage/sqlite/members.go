package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/groupsplit/internal/apperr"
	"github.com/mmynk/groupsplit/internal/models"
)

const memberColumns = "id, group_id, name, email, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.Member, error) {
	member := &models.Member{}
	var email sql.NullString
	if err := row.Scan(&member.ID, &member.GroupID, &member.Name, &email, &member.CreatedAt); err != nil {
		return nil, err
	}
	if email.Valid {
		member.Email = email.String
	}
	return member, nil
}

// CreateMember persists a new member. An empty email is stored as NULL.
func (s *session) CreateMember(ctx context.Context, member *models.Member) error {
	if member.CreatedAt == 0 {
		member.CreatedAt = now()
	}

	var email any = nil
	if member.Email != "" {
		email = member.Email
	}

	res, err := s.tx.ExecContext(ctx,
		"INSERT INTO members (group_id, name, email, created_at) VALUES (?, ?, ?, ?)",
		member.GroupID, member.Name, email, member.CreatedAt,
	)
	if isUniqueViolation(err) {
		return apperr.Conflict("member with email %q already exists in this group", member.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	member.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read member id: %w", err)
	}

	return nil
}

// GetMember retrieves a member by ID.
func (s *session) GetMember(ctx context.Context, memberID int64) (*models.Member, error) {
	member, err := scanMember(s.tx.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = ?",
		memberID,
	))
	if err == sql.ErrNoRows {
		return nil, nil // Member not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// FindMemberByEmail retrieves the member of groupID with the given email.
func (s *session) FindMemberByEmail(ctx context.Context, groupID int64, email string) (*models.Member, error) {
	member, err := scanMember(s.tx.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE group_id = ? AND email = ?",
		groupID, email,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}

	return member, nil
}

// ListMembers retrieves all members of a group in creation order.
func (s *session) ListMembers(ctx context.Context, groupID int64) ([]*models.Member, error) {
	rows, err := s.tx.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE group_id = ? ORDER BY id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// DeleteMember removes one member row.
func (s *session) DeleteMember(ctx context.Context, memberID int64) error {
	if _, err := s.tx.ExecContext(ctx, "DELETE FROM members WHERE id = ?", memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// DeleteMembersByGroup removes every member of a group.
func (s *session) DeleteMembersByGroup(ctx context.Context, groupID int64) error {
	if _, err := s.tx.ExecContext(ctx, "DELETE FROM members WHERE group_id = ?", groupID); err != nil {
		return fmt.Errorf("failed to delete members: %w", err)
	}
	return nil
}
