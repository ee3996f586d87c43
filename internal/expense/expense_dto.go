package expense

type CreateExpenseRequest struct {
	Year            int     `json:"year" binding:"required"`
	Month           string  `json:"month" binding:"required"`
	ExpenseCategory string  `json:"expenseCategory" binding:"required"`
	PlannedExpense  float64 `json:"plannedExpense" binding:"gte=0"`
	ActualExpense   float64 `json:"actualExpense" binding:"gte=0"`
}

type UpdateExpenseRequest struct {
	PlannedExpense float64 `json:"plannedExpense" binding:"gte=0"`
	ActualExpense  float64 `json:"actualExpense" binding:"gte=0"`
}

type ExpenseResponse struct {
	ID              string  `json:"id"`
	Year            int     `json:"year"`
	Month           string  `json:"month"`
	ExpenseCategory string  `json:"expenseCategory"`
	PlannedExpense  float64 `json:"plannedExpense"`
	ActualExpense   float64 `json:"actualExpense"`
}
