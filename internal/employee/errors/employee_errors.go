package employeeerrors

import (
	"net/http"

	"go-bizdash/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department",
		http.StatusBadRequest,
	)
	ErrInvalidCurrency = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid currency",
		http.StatusBadRequest,
	)
	ErrInvalidTechStack = apperror.New(
		apperror.CodeInvalidInput,
		"Tech stack does not match department",
		http.StatusBadRequest,
	)
	ErrInvalidHiringDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hiring date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTerminationDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid termination date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
