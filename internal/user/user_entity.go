package user

import (
	"time"

	"go-bizdash/internal/domain"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Email     string      `gorm:"type:text;not null;uniqueIndex:uq_user_email"`
	Password  string      `gorm:"type:text;not null"`
	FirstName string      `gorm:"type:text;not null;default:''"`
	LastName  string      `gorm:"type:text;not null;default:''"`
	Role      domain.Role `gorm:"type:text;not null;default:'Guest'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
