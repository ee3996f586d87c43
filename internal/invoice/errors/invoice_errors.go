package invoiceerrors

import (
	"net/http"

	"go-bizdash/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)
	ErrInvalidInvoiceStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid invoice status",
		http.StatusBadRequest,
	)
	ErrDuplicateInvoiceNumber = apperror.New(
		apperror.CodeConflict,
		"Invoice number already exists",
		http.StatusConflict,
	)
	ErrInvalidInvoiceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid invoice ID",
		http.StatusBadRequest,
	)
)
