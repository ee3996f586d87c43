package invoice

import (
	"time"

	"go-bizdash/internal/domain"

	"github.com/google/uuid"
)

type Invoice struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey"`
	InvoiceNumber    string               `gorm:"type:text;not null;uniqueIndex:uq_invoice_number"`
	Client           string               `gorm:"type:text;not null"`
	Industry         string               `gorm:"type:text;not null;default:''"`
	TotalHoursBilled float64              `gorm:"not null;default:0"`
	AmountBilledBAM  float64              `gorm:"column:amount_billed_bam;not null;default:0"`
	InvoiceStatus    domain.InvoiceStatus `gorm:"type:text;not null;default:'NotSent'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
