package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/groupsplit/pkg/api"
)

const (
	// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
	ExpenseServiceName = "splitter.v1.ExpenseService"

	ExpenseServiceCreateExpenseProcedure    = "/splitter.v1.ExpenseService/CreateExpense"
	ExpenseServiceListExpensesProcedure     = "/splitter.v1.ExpenseService/ListExpenses"
	ExpenseServiceGetBalancesProcedure      = "/splitter.v1.ExpenseService/GetBalances"
	ExpenseServiceSuggestTransfersProcedure = "/splitter.v1.ExpenseService/SuggestTransfers"
)

// ExpenseServiceHandler is implemented by the server side of ExpenseService.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	SuggestTransfers(context.Context, *connect.Request[api.SuggestTransfersRequest]) (*connect.Response[api.SuggestTransfersResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	createExpense := connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...)
	listExpenses := connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...)
	getBalances := connect.NewUnaryHandler(ExpenseServiceGetBalancesProcedure, svc.GetBalances, opts...)
	suggestTransfers := connect.NewUnaryHandler(ExpenseServiceSuggestTransfersProcedure, svc.SuggestTransfers, opts...)

	return "/" + ExpenseServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceCreateExpenseProcedure:
			createExpense.ServeHTTP(w, r)
		case ExpenseServiceListExpensesProcedure:
			listExpenses.ServeHTTP(w, r)
		case ExpenseServiceGetBalancesProcedure:
			getBalances.ServeHTTP(w, r)
		case ExpenseServiceSuggestTransfersProcedure:
			suggestTransfers.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ExpenseServiceClient is a client for ExpenseService.
type ExpenseServiceClient interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	SuggestTransfers(context.Context, *connect.Request[api.SuggestTransfersRequest]) (*connect.Response[api.SuggestTransfersResponse], error)
}

// NewExpenseServiceClient constructs a client for ExpenseService rooted at baseURL.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &expenseServiceClient{
		createExpense:    connect.NewClient[api.CreateExpenseRequest, api.CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		listExpenses:     connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		getBalances:      connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](httpClient, baseURL+ExpenseServiceGetBalancesProcedure, opts...),
		suggestTransfers: connect.NewClient[api.SuggestTransfersRequest, api.SuggestTransfersResponse](httpClient, baseURL+ExpenseServiceSuggestTransfersProcedure, opts...),
	}
}

type expenseServiceClient struct {
	createExpense    *connect.Client[api.CreateExpenseRequest, api.CreateExpenseResponse]
	listExpenses     *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	getBalances      *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	suggestTransfers *connect.Client[api.SuggestTransfersRequest, api.SuggestTransfersResponse]
}

func (c *expenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *expenseServiceClient) SuggestTransfers(ctx context.Context, req *connect.Request[api.SuggestTransfersRequest]) (*connect.Response[api.SuggestTransfersResponse], error) {
	return c.suggestTransfers.CallUnary(ctx, req)
}
