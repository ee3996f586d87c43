package expense

import (
	"errors"

	expenseerrors "go-bizdash/internal/expense/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrExpenseNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // uq_expense_period_category
			return expenseerrors.ErrDuplicateExpensePeriod
		case "22P02":
			return expenseerrors.ErrInvalidExpenseID
		}
	}

	return err
}
