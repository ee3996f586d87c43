package drafterrors

import (
	"net/http"

	"go-bizdash/internal/shared/apperror"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Draft session not found",
		http.StatusNotFound,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown draft kind",
		http.StatusBadRequest,
	)
	ErrNotEditing = apperror.New(
		apperror.CodeInvalidState,
		"Draft session is not in an editable state",
		http.StatusConflict,
	)
	ErrSubmitInFlight = apperror.New(
		apperror.CodeInvalidState,
		"A submit for this draft session is already in flight",
		http.StatusConflict,
	)
	ErrInvalidDraftPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid draft payload",
		http.StatusBadRequest,
	)
)
