package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/apperr"
)

// SharePlaces is the number of decimal places every share is rounded to.
const SharePlaces = 2

// Share is one member's computed portion of an amount.
type Share struct {
	MemberID int64
	Amount   decimal.Decimal
}

// EqualSplit divides amount equally across memberIDs, preserving their order.
//
// Every member receives the same share: amount / N rounded half away from
// zero to two places. The remainder is NOT redistributed, so N × share can
// drift from amount by up to N × 0.005 (10.00 across 3 → 3.33 each, 9.99 total).
func EqualSplit(amount decimal.Decimal, memberIDs []int64) ([]Share, error) {
	if !amount.IsPositive() {
		return nil, apperr.InvalidInput("amount must be positive, got %s", amount.String())
	}
	if len(memberIDs) == 0 {
		return nil, apperr.InvalidInput("no members to split with")
	}

	per := amount.DivRound(decimal.NewFromInt(int64(len(memberIDs))), SharePlaces)

	shares := make([]Share, len(memberIDs))
	for i, id := range memberIDs {
		shares[i] = Share{MemberID: id, Amount: per}
	}
	return shares, nil
}

// Drift returns amount minus the sum of shares.
func Drift(amount decimal.Decimal, shares []Share) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Amount)
	}
	return amount.Sub(total)
}
