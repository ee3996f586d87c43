package financialserrors

import (
	"net/http"

	"go-bizdash/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid aggregation period",
		http.StatusBadRequest,
	)
)
