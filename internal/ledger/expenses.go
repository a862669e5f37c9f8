package ledger

import (
	"context"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/apperr"
	"github.com/mmynk/groupsplit/internal/calculator"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// MaxAmount is the largest expense amount the store can hold in cents.
var MaxAmount = decimal.New(math.MaxInt64, -calculator.SharePlaces)

// CreateExpense records a payment by payerID and splits it equally across the
// group's current members. The expense and all of its shares are written in
// the same transaction.
//
// amount is rounded to cents first; it must still be positive and at most
// MaxAmount.
func (l *Ledger) CreateExpense(ctx context.Context, groupID, payerID int64, amount decimal.Decimal, description string) (*models.Expense, error) {
	amount = amount.Round(calculator.SharePlaces)
	if !amount.IsPositive() {
		return nil, apperr.InvalidInput("amount must be positive")
	}
	if amount.GreaterThan(MaxAmount) {
		return nil, apperr.InvalidInput("amount must not exceed %s", MaxAmount)
	}

	expense := &models.Expense{
		GroupID:     groupID,
		PayerID:     &payerID,
		Amount:      amount,
		Description: strings.TrimSpace(description),
	}

	err := l.store.InTx(ctx, func(s storage.Session) error {
		if _, err := requireGroup(ctx, s, groupID); err != nil {
			return err
		}

		payer, err := s.GetMember(ctx, payerID)
		if err != nil {
			return err
		}
		if payer == nil || payer.GroupID != groupID {
			return apperr.InvalidInput("payer must be a member of this group")
		}

		members, err := s.ListMembers(ctx, groupID)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return apperr.InvalidInput("group has no members to split with")
		}

		memberIDs := make([]int64, len(members))
		for i, m := range members {
			memberIDs[i] = m.ID
		}
		shares, err := calculator.EqualSplit(amount, memberIDs)
		if err != nil {
			return err
		}

		expense.Shares = make([]models.ExpenseShare, len(shares))
		for i, sh := range shares {
			expense.Shares[i] = models.ExpenseShare{MemberID: sh.MemberID, Share: sh.Amount}
		}

		return s.CreateExpense(ctx, expense)
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// ListExpenses returns a group's expenses newest first, each with its shares.
func (l *Ledger) ListExpenses(ctx context.Context, groupID int64) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := l.store.InTx(ctx, func(s storage.Session) error {
		if _, err := requireGroup(ctx, s, groupID); err != nil {
			return err
		}
		var err error
		expenses, err = s.ListExpenses(ctx, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
