package models

import "github.com/shopspring/decimal"

// Expense is a single payment made by one member on behalf of the group.
type Expense struct {
	// ID is assigned by the store.
	ID int64

	// GroupID is the group the expense belongs to.
	GroupID int64

	// PayerID is the member who paid. It is nil once that member has been
	// deleted; the expense itself and its remaining shares are kept.
	PayerID *int64

	// Amount is the positive total paid, in two-decimal currency units.
	Amount decimal.Decimal

	// Description is free text, possibly empty.
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// Shares is the per-member breakdown captured at creation time.
	Shares []ExpenseShare
}

// ExpenseShare is one member's owed portion of one expense.
type ExpenseShare struct {
	ID        int64
	ExpenseID int64
	MemberID  int64
	Share     decimal.Decimal
}

// PaidBy reports whether memberID is the expense's payer.
func (e *Expense) PaidBy(memberID int64) bool {
	return e.PayerID != nil && *e.PayerID == memberID
}
