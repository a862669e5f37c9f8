package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/models"
)

// NetBalances computes each member's net position across a group's expenses.
//
// Algorithm:
// - For each expense: payer is credited the full amount
// - For each share: the member is debited the share
// - net = round(total_paid - total_owed, 2)
//
// Credits and debits for IDs outside members (a deleted payer, a removed
// member) are ignored. The result is sorted by net descending; members with
// equal nets keep their relative order from the input.
func NetBalances(members []*models.Member, expenses []*models.Expense) []models.MemberBalance {
	if len(members) == 0 {
		return []models.MemberBalance{}
	}

	index := make(map[int64]int, len(members))
	balances := make([]models.MemberBalance, len(members))
	for i, m := range members {
		index[m.ID] = i
		balances[i] = models.MemberBalance{
			MemberID:  m.ID,
			Name:      m.Name,
			TotalPaid: decimal.Zero,
			TotalOwed: decimal.Zero,
		}
	}

	for _, e := range expenses {
		if e.PayerID != nil {
			if i, ok := index[*e.PayerID]; ok {
				balances[i].TotalPaid = balances[i].TotalPaid.Add(e.Amount)
			}
		}
		for _, s := range e.Shares {
			if i, ok := index[s.MemberID]; ok {
				balances[i].TotalOwed = balances[i].TotalOwed.Add(s.Share)
			}
		}
	}

	for i := range balances {
		balances[i].Net = balances[i].TotalPaid.Sub(balances[i].TotalOwed).Round(SharePlaces)
	}

	slices.SortStableFunc(balances, func(a, b models.MemberBalance) int {
		return b.Net.Cmp(a.Net)
	})
	return balances
}

// SimplifyDebts suggests transfers that settle the given balances.
//
// Greedy matching: the largest debtor pays the largest creditor the smaller
// of the two outstanding amounts, then whichever side reached zero moves on.
// Rounding drift means balances may not sum to zero; any leftover cents on
// the longer side are left unsettled.
func SimplifyDebts(balances []models.MemberBalance) []models.Transfer {
	var creditors, debtors []models.MemberBalance
	for _, b := range balances {
		switch {
		case b.Net.IsPositive():
			creditors = append(creditors, b)
		case b.Net.IsNegative():
			debtors = append(debtors, b)
		}
	}

	slices.SortStableFunc(creditors, func(a, b models.MemberBalance) int {
		return b.Net.Cmp(a.Net)
	})
	slices.SortStableFunc(debtors, func(a, b models.MemberBalance) int {
		return a.Net.Cmp(b.Net)
	})

	owes := make([]decimal.Decimal, len(debtors))
	for i, d := range debtors {
		owes[i] = d.Net.Neg()
	}
	owed := make([]decimal.Decimal, len(creditors))
	for j, c := range creditors {
		owed[j] = c.Net
	}

	transfers := []models.Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(owes[i], owed[j])
		if amount.IsPositive() {
			transfers = append(transfers, models.Transfer{
				FromMemberID: debtors[i].MemberID,
				ToMemberID:   creditors[j].MemberID,
				Amount:       amount,
			})
		}

		owes[i] = owes[i].Sub(amount)
		owed[j] = owed[j].Sub(amount)

		if !owes[i].IsPositive() {
			i++
		}
		if !owed[j].IsPositive() {
			j++
		}
	}

	return transfers
}
