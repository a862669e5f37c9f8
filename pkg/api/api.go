// Package api defines the request and response messages of the
// splitter.v1 RPC services. Messages travel as JSON; money fields are
// decimal strings (e.g. "3.33").
package api

import "github.com/shopspring/decimal"

// Group is the wire form of a group.
type Group struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Member is the wire form of a group member.
type Member struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// ExpenseShare is one member's portion of an expense.
type ExpenseShare struct {
	MemberID int64           `json:"member_id"`
	Share    decimal.Decimal `json:"share"`
}

// Expense is the wire form of an expense with its share breakdown.
// PayerID is null when the paying member has been deleted.
type Expense struct {
	ID          int64           `json:"id"`
	GroupID     int64           `json:"group_id"`
	PayerID     *int64          `json:"payer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   int64           `json:"created_at"`
	Shares      []*ExpenseShare `json:"shares"`
}

// Balance is one member's net position in a group.
type Balance struct {
	MemberID  int64           `json:"member_id"`
	Name      string          `json:"name"`
	Net       decimal.Decimal `json:"net"`
	TotalPaid decimal.Decimal `json:"total_paid"`
	TotalOwed decimal.Decimal `json:"total_owed"`
}

// Transfer is a suggested settle-up payment.
type Transfer struct {
	FromMemberID int64           `json:"from_member_id"`
	ToMemberID   int64           `json:"to_member_id"`
	Amount       decimal.Decimal `json:"amount"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID int64 `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type DeleteGroupRequest struct {
	GroupID int64 `json:"group_id"`
}

type DeleteGroupResponse struct{}

type CreateMemberRequest struct {
	GroupID int64  `json:"group_id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
}

type CreateMemberResponse struct {
	Member *Member `json:"member"`
}

type ListMembersRequest struct {
	GroupID int64 `json:"group_id"`
}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

type DeleteMemberRequest struct {
	GroupID  int64 `json:"group_id"`
	MemberID int64 `json:"member_id"`
}

type DeleteMemberResponse struct{}

type CreateExpenseRequest struct {
	GroupID     int64           `json:"group_id"`
	PayerID     int64           `json:"payer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupID int64 `json:"group_id"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type GetBalancesRequest struct {
	GroupID int64 `json:"group_id"`
}

type GetBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

type SuggestTransfersRequest struct {
	GroupID int64 `json:"group_id"`
}

type SuggestTransfersResponse struct {
	Transfers []*Transfer `json:"transfers"`
}
