package projecterrors

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
	ErrDuplicateProjectName = apperror.New(
		apperror.CodeConflict,
		"A project with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidProjectType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project type",
		http.StatusBadRequest,
	)
	ErrInvalidSalesChannel = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid sales channel",
		http.StatusBadRequest,
	)
	ErrInvalidProjectStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project status",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid start date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid end date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project ID",
		http.StatusBadRequest,
	)
	ErrInvalidAssignment = apperror.New(
		apperror.CodeInvalidInput,
		"Assigned employee does not exist",
		http.StatusBadRequest,
	)
)
