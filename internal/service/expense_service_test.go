package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/pkg/api"
)

func TestAddExpense_Validation(t *testing.T) {
	client := setupTestServer(t).expenseClient("alice")

	tests := []struct {
		name string
		req  *api.AddExpenseRequest
	}{
		{"zero amount", &api.AddExpenseRequest{Category: "food", Amount: 0, Date: "2024-03-01"}},
		{"negative amount", &api.AddExpenseRequest{Category: "food", Amount: -5, Date: "2024-03-01"}},
		{"bad date", &api.AddExpenseRequest{Category: "food", Amount: 5, Date: "03/01/2024"}},
		{"missing date", &api.AddExpenseRequest{Category: "food", Amount: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AddExpense(context.Background(), connect.NewRequest(tt.req))
			wantCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestExpenseLifecycle(t *testing.T) {
	srv := setupTestServer(t)
	client := srv.expenseClient("alice")
	ctx := context.Background()

	add := func(category string, amount float64) *api.Expense {
		t.Helper()
		resp, err := client.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
			Category: category,
			Amount:   amount,
			Date:     "2024-03-01",
		}))
		if err != nil {
			t.Fatalf("AddExpense failed: %v", err)
		}
		return resp.Msg.Expense
	}

	food := add("food", 4000)
	add("transport", 3500)
	odd := add("gadgets", 2000)

	if food.ExpenseID == "" || food.Label != "🍕 Food" {
		t.Errorf("food expense = %+v", food)
	}
	if odd.Category != "other" {
		t.Errorf("unknown category stored as %q, want other", odd.Category)
	}

	list, err := client.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(list.Msg.Expenses))
	}

	summary, err := client.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	s := summary.Msg
	if s.Budget != 10000 || s.Total != 9500 || s.Remaining != 500 || math.Abs(s.PercentUsed-95) > 1e-9 {
		t.Errorf("summary = budget %v total %v remaining %v percent %v", s.Budget, s.Total, s.Remaining, s.PercentUsed)
	}
	if len(s.ByCategory) != 3 || s.ByCategory[0].Category != "food" {
		t.Errorf("by category = %+v", s.ByCategory)
	}
	if len(s.Notices) != 2 || s.Notices[0].Level != "warning" || s.Notices[1].Message != "💰 Only ₹500 left in your budget!" {
		t.Errorf("notices = %+v", s.Notices)
	}

	if _, err := client.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{ExpenseID: food.ExpenseID})); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	_, err = client.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{ExpenseID: food.ExpenseID}))
	wantCode(t, err, connect.CodeNotFound)

	_, err = client.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestExpenses_ScopedByUser(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()

	resp, err := srv.expenseClient("alice").AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
		Category: "bills",
		Amount:   800,
		Date:     "2024-03-02",
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	bob := srv.expenseClient("bob")
	_, err = bob.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{ExpenseID: resp.Msg.Expense.ExpenseID}))
	wantCode(t, err, connect.CodeNotFound)

	summary, err := bob.GetSummary(ctx, connect.NewRequest(&api.GetSummaryRequest{}))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Msg.Total != 0 {
		t.Errorf("bob total = %v, want 0", summary.Msg.Total)
	}
	if len(summary.Msg.Notices) != 1 || summary.Msg.Notices[0].Level != "success" {
		t.Errorf("bob notices = %+v", summary.Msg.Notices)
	}
}
