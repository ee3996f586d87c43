package invoice

import (
	"errors"

	invoiceerrors "go-bizdash/internal/invoice/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoiceerrors.ErrInvoiceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // uq_invoice_number
			return invoiceerrors.ErrDuplicateInvoiceNumber
		case "22P02":
			return invoiceerrors.ErrInvalidInvoiceID
		}
	}

	return err
}
