package user

import (
	"errors"

	usererrors "go-bizdash/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // uq_user_email
			return usererrors.ErrEmailTaken
		case "22P02":
			return usererrors.ErrInvalidUserID
		}
	}

	return err
}
