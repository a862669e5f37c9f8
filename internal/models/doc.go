// Package models defines the core domain models for group expense splitting.
//
// # Entities
//
//   - Group: root entity, owns Members and Expenses
//   - Member: a person in exactly one Group
//   - Expense: one payment by a Member on behalf of the Group
//   - ExpenseShare: one Member's owed portion of one Expense
//
// # Design Principles
//
// 1. **Snapshot splits**: an Expense carries the materialised list of shares
// computed when it was created; later membership changes never rewrite it.
// 2. **Exact money**: amounts are decimal.Decimal in Go and integer cents in
// the store, so two-decimal values round-trip without float noise.
// 3. **Avoid circular references**: relationships are IDs, not pointers.
package models
