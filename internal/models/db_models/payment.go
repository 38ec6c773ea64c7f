package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment is append-only: one row per confirmed provider payment.
// PaymentKey carries a unique index so a duplicated confirm cannot
// produce a second row.
type Payment struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index;not null"`
	PaymentKey  string    `gorm:"size:200;uniqueIndex;not null"`
	OrderNumber string    `gorm:"size:64;index;not null"`

	Amount     int64         // KRW, smallest unit
	Status     PaymentStatus `gorm:"size:20;default:approved;index"`
	Method     string        `gorm:"size:30"`
	ApprovedAt *int64

	// raw provider payload, kept for audit
	RawResponse datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
