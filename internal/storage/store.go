// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/groupsplit/internal/models"
)

// Store is the process-wide handle to the relational store.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger layer.
type Store interface {
	// InTx runs fn inside a single transaction. The transaction is committed
	// when fn returns nil and rolled back otherwise; fn's error is returned
	// unchanged so callers can inspect it.
	InTx(ctx context.Context, fn func(Session) error) error

	// Close releases any resources held by the store.
	Close() error
}

// Session exposes row-level operations scoped to one transaction.
// Lookups return nil and no error when the row does not exist.
type Session interface {
	// CreateGroup inserts a group; ID and CreatedAt are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)
	FindGroupByName(ctx context.Context, name string) (*models.Group, error)
	// ListGroups returns every group, newest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)
	DeleteGroup(ctx context.Context, groupID int64) error

	// CreateMember inserts a member; ID and CreatedAt are populated by the store.
	CreateMember(ctx context.Context, member *models.Member) error
	GetMember(ctx context.Context, memberID int64) (*models.Member, error)
	FindMemberByEmail(ctx context.Context, groupID int64, email string) (*models.Member, error)
	// ListMembers returns the group's members in creation order, oldest first.
	ListMembers(ctx context.Context, groupID int64) ([]*models.Member, error)
	DeleteMember(ctx context.Context, memberID int64) error
	DeleteMembersByGroup(ctx context.Context, groupID int64) error

	// CreateExpense inserts the expense and every entry of expense.Shares.
	// IDs, ExpenseID on shares and CreatedAt are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error
	// ListExpenses returns the group's expenses newest first, each with its
	// shares in insertion order.
	ListExpenses(ctx context.Context, groupID int64) ([]*models.Expense, error)
	ListExpenseIDs(ctx context.Context, groupID int64) ([]int64, error)
	// ClearPayer nulls the payer reference on every expense paid by memberID.
	ClearPayer(ctx context.Context, memberID int64) error
	DeleteExpensesByGroup(ctx context.Context, groupID int64) error

	DeleteSharesByExpenses(ctx context.Context, expenseIDs []int64) error
	DeleteSharesByMember(ctx context.Context, memberID int64) error
}
