package project

import (
	"errors"

	projecterrors "go-bizdash/internal/project/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projecterrors.ErrProjectNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // uq_project_name
			return projecterrors.ErrDuplicateProjectName
		case "23503": // assignment references a missing employee
			return projecterrors.ErrInvalidAssignment
		case "22P02":
			return projecterrors.ErrInvalidProjectID
		}
	}

	return err
}
