package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/internal/budget"
	"github.com/mmynk/moneyquest/internal/middleware"
	"github.com/mmynk/moneyquest/internal/models"
	"github.com/mmynk/moneyquest/internal/storage"
	"github.com/mmynk/moneyquest/pkg/api"
	"github.com/mmynk/moneyquest/pkg/api/apiconnect"
)

const dateLayout = "2006-01-02"

var errExpenseIDRequired = errors.New("expense_id required")

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store         storage.ExpenseStore
	monthlyBudget float64
	currency      string
}

// NewExpenseService creates a new ExpenseService tracking spending against monthlyBudget.
func NewExpenseService(store storage.ExpenseStore, monthlyBudget float64, currency string) *ExpenseService {
	return &ExpenseService{store: store, monthlyBudget: monthlyBudget, currency: currency}
}

// AddExpense records a new expense.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)

	if math.IsNaN(req.Msg.Amount) || math.IsInf(req.Msg.Amount, 0) || req.Msg.Amount <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive, got %v", req.Msg.Amount))
	}
	if _, err := time.Parse(dateLayout, req.Msg.Date); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("date must be YYYY-MM-DD: %w", err))
	}

	expense := &models.Expense{
		UserID:   userID,
		Category: models.ParseCategory(req.Msg.Category),
		Amount:   req.Msg.Amount,
		Date:     req.Msg.Date,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "user_id", userID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	slog.Info("Expense added",
		"user_id", userID,
		"expense_id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount,
	)

	return connect.NewResponse(&api.AddExpenseResponse{Expense: expenseToAPI(expense)}), nil
}

// ListExpenses retrieves the caller's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID := middleware.GetUserID(ctx)

	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		slog.Error("ListExpenses failed", "user_id", userID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToAPI(e)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes one of the caller's expenses.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	if req.Msg.ExpenseID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errExpenseIDRequired)
	}

	if err := s.store.DeleteExpense(ctx, middleware.GetUserID(ctx), req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetSummary totals the caller's expenses against the monthly budget.
func (s *ExpenseService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	userID := middleware.GetUserID(ctx)

	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		slog.Error("GetSummary failed", "user_id", userID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	summary := budget.Summarize(s.currency, expenses, s.monthlyBudget)

	categories := make([]*api.CategoryTotal, len(summary.ByCategory))
	for i, c := range summary.ByCategory {
		categories[i] = &api.CategoryTotal{
			Category: string(c.Category),
			Label:    c.Label,
			Total:    c.Total,
		}
	}
	notices := make([]*api.Notice, len(summary.Notices))
	for i, n := range summary.Notices {
		notices[i] = &api.Notice{Level: string(n.Level), Message: n.Message}
	}

	slog.Debug("GetSummary successful",
		"user_id", userID,
		"total", summary.Total,
		"percent_used", summary.PercentUsed,
	)

	return connect.NewResponse(&api.GetSummaryResponse{
		Budget:      summary.Budget,
		Total:       summary.Total,
		Remaining:   summary.Remaining,
		PercentUsed: summary.PercentUsed,
		ByCategory:  categories,
		Notices:     notices,
	}), nil
}
