package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/groupsplit/internal/ledger"
	"github.com/mmynk/groupsplit/pkg/api"
	"github.com/mmynk/groupsplit/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	ledger *ledger.Ledger
}

var _ apiconnect.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService backed by the given ledger.
func NewExpenseService(l *ledger.Ledger) *ExpenseService {
	return &ExpenseService{ledger: l}
}

// CreateExpense records an expense and splits it equally across the group.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"group_id", req.Msg.GroupID,
		"payer_id", req.Msg.PayerID,
		"amount", req.Msg.Amount,
	)

	expense, err := s.ledger.CreateExpense(ctx, req.Msg.GroupID, req.Msg.PayerID, req.Msg.Amount, req.Msg.Description)
	if err != nil {
		slog.Error("CreateExpense failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"shares_count", len(expense.Shares),
	)

	return connect.NewResponse(&api.CreateExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// ListExpenses returns a group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "group_id", req.Msg.GroupID)

	expenses, err := s.ledger.ListExpenses(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	apiExpenses := make([]*api.Expense, len(expenses))
	for i, expense := range expenses {
		apiExpenses[i] = toAPIExpense(expense)
	}

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses: apiExpenses,
	}), nil
}

// GetBalances returns every member's net position, largest creditor first.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	slog.Info("GetBalances request received", "group_id", req.Msg.GroupID)

	balances, err := s.ledger.GetBalances(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetBalances failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	apiBalances := make([]*api.Balance, len(balances))
	for i, bal := range balances {
		apiBalances[i] = &api.Balance{
			MemberID:  bal.MemberID,
			Name:      bal.Name,
			Net:       bal.Net,
			TotalPaid: bal.TotalPaid,
			TotalOwed: bal.TotalOwed,
		}
	}

	slog.Info("GetBalances successful",
		"group_id", req.Msg.GroupID,
		"members_count", len(balances),
	)

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances: apiBalances,
	}), nil
}

// SuggestTransfers proposes payments that would settle the group.
func (s *ExpenseService) SuggestTransfers(ctx context.Context, req *connect.Request[api.SuggestTransfersRequest]) (*connect.Response[api.SuggestTransfersResponse], error) {
	slog.Info("SuggestTransfers request received", "group_id", req.Msg.GroupID)

	transfers, err := s.ledger.SuggestTransfers(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("SuggestTransfers failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	apiTransfers := make([]*api.Transfer, len(transfers))
	for i, t := range transfers {
		apiTransfers[i] = &api.Transfer{
			FromMemberID: t.FromMemberID,
			ToMemberID:   t.ToMemberID,
			Amount:       t.Amount,
		}
	}

	return connect.NewResponse(&api.SuggestTransfersResponse{
		Transfers: apiTransfers,
	}), nil
}
