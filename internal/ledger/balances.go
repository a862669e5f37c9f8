package ledger

import (
	"context"

	"github.com/mmynk/groupsplit/internal/calculator"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// GetBalances returns every member's net position in the group, creditors
// first. A group without members yields an empty list.
func (l *Ledger) GetBalances(ctx context.Context, groupID int64) ([]models.MemberBalance, error) {
	var (
		members  []*models.Member
		expenses []*models.Expense
	)
	err := l.store.InTx(ctx, func(s storage.Session) error {
		if _, err := requireGroup(ctx, s, groupID); err != nil {
			return err
		}

		var err error
		members, err = s.ListMembers(ctx, groupID)
		if err != nil || len(members) == 0 {
			return err
		}
		expenses, err = s.ListExpenses(ctx, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return calculator.NetBalances(members, expenses), nil
}

// SuggestTransfers returns payments that would settle the group's balances.
func (l *Ledger) SuggestTransfers(ctx context.Context, groupID int64) ([]models.Transfer, error) {
	balances, err := l.GetBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return calculator.SimplifyDebts(balances), nil
}
