package expenseerrors

import (
	"net/http"

	"go-bizdash/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense record not found",
		http.StatusNotFound,
	)
	ErrDuplicateExpensePeriod = apperror.New(
		apperror.CodeConflict,
		"An expense record for this period and category already exists",
		http.StatusConflict,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month name",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid year",
		http.StatusBadRequest,
	)
	ErrInvalidExpenseID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid expense ID",
		http.StatusBadRequest,
	)
)
