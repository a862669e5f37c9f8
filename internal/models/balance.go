package models

import "github.com/shopspring/decimal"

// MemberBalance is one member's net position within a group.
type MemberBalance struct {
	MemberID int64
	Name     string

	// Net is TotalPaid - TotalOwed, rounded to two places.
	// Positive = is owed money, negative = owes money.
	Net decimal.Decimal

	TotalPaid decimal.Decimal
	TotalOwed decimal.Decimal
}

// Transfer is a suggested payment that moves a debtor towards zero.
type Transfer struct {
	FromMemberID int64
	ToMemberID   int64
	Amount       decimal.Decimal
}
