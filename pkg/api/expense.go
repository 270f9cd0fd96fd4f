package api

type Expense struct {
	ExpenseID string  `json:"expense_id"`
	Category  string  `json:"category"`
	Label     string  `json:"label"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"` // YYYY-MM-DD
	CreatedAt int64   `json:"created_at"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Total    float64 `json:"total"`
}

type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type AddExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Budget      float64          `json:"budget"`
	Total       float64          `json:"total"`
	Remaining   float64          `json:"remaining"`
	PercentUsed float64          `json:"percent_used"`
	ByCategory  []*CategoryTotal `json:"by_category"`
	Notices     []*Notice        `json:"notices"`
}
