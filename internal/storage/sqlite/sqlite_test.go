package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupsplit/internal/apperr"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })

	return store
}

func countRows(t *testing.T, store *SQLiteStore, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, store.db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup assigns increasing IDs", func(t *testing.T) {
		var first, second models.Group
		err := store.InTx(ctx, func(s storage.Session) error {
			first.Name = "Roommates"
			if err := s.CreateGroup(ctx, &first); err != nil {
				return err
			}
			second.Name = "Work Lunch"
			return s.CreateGroup(ctx, &second)
		})
		require.NoError(t, err)

		assert.NotZero(t, first.ID)
		assert.Greater(t, second.ID, first.ID)
		assert.NotZero(t, first.CreatedAt)
	})

	t.Run("ListGroups is newest first", func(t *testing.T) {
		var groups []*models.Group
		err := store.InTx(ctx, func(s storage.Session) error {
			var err error
			groups, err = s.ListGroups(ctx)
			return err
		})
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "Work Lunch", groups[0].Name)
		assert.Equal(t, "Roommates", groups[1].Name)
	})

	t.Run("duplicate group name is a conflict", func(t *testing.T) {
		err := store.InTx(ctx, func(s storage.Session) error {
			return s.CreateGroup(ctx, &models.Group{Name: "Roommates"})
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(t, 1, countRows(t, store, "SELECT COUNT(*) FROM groups WHERE name = ?", "Roommates"))
	})

	t.Run("GetGroup returns nil for nonexistent group", func(t *testing.T) {
		err := store.InTx(ctx, func(s storage.Session) error {
			group, err := s.GetGroup(ctx, 9999)
			assert.Nil(t, group)
			return err
		})
		require.NoError(t, err)
	})
}

func TestMembers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Trip"}
	other := &models.Group{Name: "Other"}
	require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
		if err := s.CreateGroup(ctx, group); err != nil {
			return err
		}
		return s.CreateGroup(ctx, other)
	}))

	t.Run("email is optional and unique within group", func(t *testing.T) {
		err := store.InTx(ctx, func(s storage.Session) error {
			for _, m := range []*models.Member{
				{GroupID: group.ID, Name: "A", Email: "a@example.com"},
				{GroupID: group.ID, Name: "B"},
				{GroupID: group.ID, Name: "C"},
				{GroupID: other.ID, Name: "A elsewhere", Email: "a@example.com"},
			} {
				if err := s.CreateMember(ctx, m); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		err = store.InTx(ctx, func(s storage.Session) error {
			return s.CreateMember(ctx, &models.Member{GroupID: group.ID, Name: "A2", Email: "a@example.com"})
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("ListMembers in creation order with email round trip", func(t *testing.T) {
		var members []*models.Member
		require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
			var err error
			members, err = s.ListMembers(ctx, group.ID)
			return err
		}))

		require.Len(t, members, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{members[0].Name, members[1].Name, members[2].Name})
		assert.Equal(t, "a@example.com", members[0].Email)
		assert.Empty(t, members[1].Email)
	})

	t.Run("FindMemberByEmail is scoped to the group", func(t *testing.T) {
		require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
			m, err := s.FindMemberByEmail(ctx, other.ID, "a@example.com")
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.Equal(t, "A elsewhere", m.Name)

			missing, err := s.FindMemberByEmail(ctx, other.ID, "b@example.com")
			assert.Nil(t, missing)
			return err
		}))
	})
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Trip"}
	a := &models.Member{Name: "A"}
	b := &models.Member{Name: "B"}
	require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
		if err := s.CreateGroup(ctx, group); err != nil {
			return err
		}
		for _, m := range []*models.Member{a, b} {
			m.GroupID = group.ID
			if err := s.CreateMember(ctx, m); err != nil {
				return err
			}
		}
		return nil
	}))

	newExpense := func(payer *models.Member, amount, share string) *models.Expense {
		return &models.Expense{
			GroupID:     group.ID,
			PayerID:     &payer.ID,
			Amount:      decimal.RequireFromString(amount),
			Description: "dinner",
			Shares: []models.ExpenseShare{
				{MemberID: a.ID, Share: decimal.RequireFromString(share)},
				{MemberID: b.ID, Share: decimal.RequireFromString(share)},
			},
		}
	}

	first := newExpense(a, "10.01", "5.01")
	second := newExpense(b, "3", "1.50")
	require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
		if err := s.CreateExpense(ctx, first); err != nil {
			return err
		}
		return s.CreateExpense(ctx, second)
	}))

	t.Run("CreateExpense populates IDs", func(t *testing.T) {
		assert.NotZero(t, first.ID)
		for _, share := range first.Shares {
			assert.NotZero(t, share.ID)
			assert.Equal(t, first.ID, share.ExpenseID)
		}
	})

	t.Run("ListExpenses newest first with exact amounts", func(t *testing.T) {
		var expenses []*models.Expense
		require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
			var err error
			expenses, err = s.ListExpenses(ctx, group.ID)
			return err
		}))

		require.Len(t, expenses, 2)
		assert.Equal(t, second.ID, expenses[0].ID)
		assert.Equal(t, first.ID, expenses[1].ID)

		got := expenses[1]
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("10.01")), "amount = %s", got.Amount)
		require.NotNil(t, got.PayerID)
		assert.Equal(t, a.ID, *got.PayerID)
		require.Len(t, got.Shares, 2)
		assert.Equal(t, a.ID, got.Shares[0].MemberID)
		assert.True(t, got.Shares[1].Share.Equal(decimal.RequireFromString("5.01")))
	})

	t.Run("failed transaction leaves nothing behind", func(t *testing.T) {
		bad := newExpense(a, "4", "2")
		bad.Shares[1].MemberID = 9999 // violates the member foreign key

		err := store.InTx(ctx, func(s storage.Session) error {
			return s.CreateExpense(ctx, bad)
		})
		require.Error(t, err)
		assert.Equal(t, 2, countRows(t, store, "SELECT COUNT(*) FROM expenses"))
		assert.Equal(t, 4, countRows(t, store, "SELECT COUNT(*) FROM expense_shares"))
	})

	t.Run("ClearPayer keeps the expense readable", func(t *testing.T) {
		var expenses []*models.Expense
		require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
			if err := s.ClearPayer(ctx, a.ID); err != nil {
				return err
			}
			var err error
			expenses, err = s.ListExpenses(ctx, group.ID)
			return err
		}))

		require.Len(t, expenses, 2)
		assert.Nil(t, expenses[1].PayerID)
		require.NotNil(t, expenses[0].PayerID)
		assert.Equal(t, b.ID, *expenses[0].PayerID)
	})

	t.Run("ordered cascade removes every dependent row", func(t *testing.T) {
		require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
			ids, err := s.ListExpenseIDs(ctx, group.ID)
			if err != nil {
				return err
			}
			assert.Len(t, ids, 2)
			if err := s.DeleteSharesByExpenses(ctx, ids); err != nil {
				return err
			}
			if err := s.DeleteExpensesByGroup(ctx, group.ID); err != nil {
				return err
			}
			if err := s.DeleteMembersByGroup(ctx, group.ID); err != nil {
				return err
			}
			return s.DeleteGroup(ctx, group.ID)
		}))

		assert.Zero(t, countRows(t, store, "SELECT COUNT(*) FROM members WHERE group_id = ?", group.ID))
		assert.Zero(t, countRows(t, store, "SELECT COUNT(*) FROM expenses WHERE group_id = ?", group.ID))
		assert.Zero(t, countRows(t, store, "SELECT COUNT(*) FROM expense_shares"))
		assert.Zero(t, countRows(t, store, "SELECT COUNT(*) FROM groups"))
	})
}

func TestDeleteSharesByExpensesInChunks(t *testing.T) {
	limit := maxInClauseIDs
	maxInClauseIDs = 2
	t.Cleanup(func() { maxInClauseIDs = limit })

	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Busy"}
	payer := &models.Member{Name: "A"}
	require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
		if err := s.CreateGroup(ctx, group); err != nil {
			return err
		}
		payer.GroupID = group.ID
		if err := s.CreateMember(ctx, payer); err != nil {
			return err
		}
		for range 5 {
			if err := s.CreateExpense(ctx, &models.Expense{
				GroupID: group.ID,
				PayerID: &payer.ID,
				Amount:  decimal.RequireFromString("1"),
				Shares:  []models.ExpenseShare{{MemberID: payer.ID, Share: decimal.RequireFromString("1")}},
			}); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
		ids, err := s.ListExpenseIDs(ctx, group.ID)
		if err != nil {
			return err
		}
		assert.Len(t, ids, 5)
		return s.DeleteSharesByExpenses(ctx, ids)
	}))

	assert.Zero(t, countRows(t, store, "SELECT COUNT(*) FROM expense_shares"))
	assert.Equal(t, 5, countRows(t, store, "SELECT COUNT(*) FROM expenses"))
}

func TestForeignKeysEnforced(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Trip"}
	require.NoError(t, store.InTx(ctx, func(s storage.Session) error {
		if err := s.CreateGroup(ctx, group); err != nil {
			return err
		}
		return s.CreateMember(ctx, &models.Member{GroupID: group.ID, Name: "A"})
	}))

	// Deleting the group while a member still references it must fail.
	err := store.InTx(ctx, func(s storage.Session) error {
		return s.DeleteGroup(ctx, group.ID)
	})
	require.Error(t, err)
	assert.Equal(t, 1, countRows(t, store, "SELECT COUNT(*) FROM groups"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs migrations again against the existing schema.
	store, err = New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, 0, countRows(t, store, "SELECT COUNT(*) FROM groups"))
}

func TestInClause(t *testing.T) {
	in, args := inClause([]int64{4, 5, 6})
	assert.Equal(t, "(?, ?, ?)", in)
	assert.Equal(t, []any{int64(4), int64(5), int64(6)}, args)

	assert.Equal(t, "", repeatPlaceholder(0))
}
