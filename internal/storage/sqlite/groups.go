package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/groupsplit/internal/apperr"
	"github.com/mmynk/groupsplit/internal/models"
)

// CreateGroup persists a new group.
func (s *session) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.CreatedAt == 0 {
		group.CreatedAt = now()
	}

	res, err := s.tx.ExecContext(ctx,
		"INSERT INTO groups (name, created_at) VALUES (?, ?)",
		group.Name, group.CreatedAt,
	)
	if isUniqueViolation(err) {
		return apperr.Conflict("group with name %q already exists", group.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	group.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read group id: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID.
func (s *session) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	group := &models.Group{}
	err := s.tx.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Group not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// FindGroupByName retrieves a group by its exact name.
func (s *session) FindGroupByName(ctx context.Context, name string) (*models.Group, error) {
	group := &models.Group{}
	err := s.tx.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM groups WHERE name = ?",
		name,
	).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group by name: %w", err)
	}

	return group, nil
}

// ListGroups retrieves all groups, newest first.
func (s *session) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.tx.QueryContext(ctx,
		"SELECT id, name, created_at FROM groups ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := []*models.Group{}
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// DeleteGroup removes the group row only. Dependent rows must be gone already.
func (s *session) DeleteGroup(ctx context.Context, groupID int64) error {
	if _, err := s.tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}
