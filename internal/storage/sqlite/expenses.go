package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/mmynk/groupsplit/internal/models"
)

// CreateExpense persists an expense together with its shares.
func (s *session) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now()
	}

	var payer any = nil
	if expense.PayerID != nil {
		payer = *expense.PayerID
	}

	res, err := s.tx.ExecContext(ctx,
		`INSERT INTO expenses (group_id, payer_id, amount_cents, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		expense.GroupID, payer, toCents(expense.Amount), expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	expense.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}

	for i := range expense.Shares {
		share := &expense.Shares[i]
		share.ExpenseID = expense.ID

		res, err := s.tx.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, member_id, share_cents) VALUES (?, ?, ?)",
			share.ExpenseID, share.MemberID, toCents(share.Share),
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}

		share.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read expense share id: %w", err)
		}
	}

	return nil
}

// ListExpenses retrieves a group's expenses newest first, with their shares.
func (s *session) ListExpenses(ctx context.Context, groupID int64) ([]*models.Expense, error) {
	rows, err := s.tx.QueryContext(ctx,
		`SELECT id, group_id, payer_id, amount_cents, description, created_at
		 FROM expenses WHERE group_id = ? ORDER BY id DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	byID := make(map[int64]*models.Expense)
	for rows.Next() {
		expense := &models.Expense{Shares: []models.ExpenseShare{}}
		var payer sql.NullInt64
		var cents int64
		if err := rows.Scan(&expense.ID, &expense.GroupID, &payer, &cents,
			&expense.Description, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if payer.Valid {
			payerID := payer.Int64
			expense.PayerID = &payerID
		}
		expense.Amount = fromCents(cents)

		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	if len(expenses) == 0 {
		return expenses, nil
	}

	shareRows, err := s.tx.QueryContext(ctx,
		`SELECT s.id, s.expense_id, s.member_id, s.share_cents
		 FROM expense_shares s JOIN expenses e ON e.id = s.expense_id
		 WHERE e.group_id = ? ORDER BY s.id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var share models.ExpenseShare
		var cents int64
		if err := shareRows.Scan(&share.ID, &share.ExpenseID, &share.MemberID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		share.Share = fromCents(cents)

		if expense, ok := byID[share.ExpenseID]; ok {
			expense.Shares = append(expense.Shares, share)
		}
	}
	if err := shareRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}

	return expenses, nil
}

// ListExpenseIDs returns the IDs of every expense in a group.
func (s *session) ListExpenseIDs(ctx context.Context, groupID int64) ([]int64, error) {
	rows, err := s.tx.QueryContext(ctx, "SELECT id FROM expenses WHERE group_id = ?", groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expense id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense ids: %w", err)
	}

	return ids, nil
}

// ClearPayer nulls payer_id on every expense paid by memberID.
func (s *session) ClearPayer(ctx context.Context, memberID int64) error {
	if _, err := s.tx.ExecContext(ctx,
		"UPDATE expenses SET payer_id = NULL WHERE payer_id = ?", memberID,
	); err != nil {
		return fmt.Errorf("failed to clear expense payer: %w", err)
	}
	return nil
}

// DeleteExpensesByGroup removes every expense of a group.
func (s *session) DeleteExpensesByGroup(ctx context.Context, groupID int64) error {
	if _, err := s.tx.ExecContext(ctx, "DELETE FROM expenses WHERE group_id = ?", groupID); err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	return nil
}

// DeleteSharesByExpenses removes every share of the given expenses.
func (s *session) DeleteSharesByExpenses(ctx context.Context, expenseIDs []int64) error {
	// Chunked so a large group never exceeds SQLite's bound-variable limit.
	for chunk := range slices.Chunk(expenseIDs, maxInClauseIDs) {
		in, args := inClause(chunk)
		if _, err := s.tx.ExecContext(ctx,
			"DELETE FROM expense_shares WHERE expense_id IN "+in, args...,
		); err != nil {
			return fmt.Errorf("failed to delete expense shares: %w", err)
		}
	}
	return nil
}

// DeleteSharesByMember removes every share owed by memberID.
func (s *session) DeleteSharesByMember(ctx context.Context, memberID int64) error {
	if _, err := s.tx.ExecContext(ctx,
		"DELETE FROM expense_shares WHERE member_id = ?", memberID,
	); err != nil {
		return fmt.Errorf("failed to delete member shares: %w", err)
	}
	return nil
}
