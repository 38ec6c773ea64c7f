package db_models

import (
	"github.com/google/uuid"
)

type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "free"
	PlanMonthly SubscriptionPlan = "monthly"
	PlanYearly  SubscriptionPlan = "yearly"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription holds one row per account (writes go through an
// upsert keyed on account_id).
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex;not null"`

	Plan   SubscriptionPlan   `gorm:"size:20;default:free;index"`
	Status SubscriptionStatus `gorm:"size:20;default:active;index"`
	Price  int64              // KRW, smallest unit

	// unix seconds, nil = unset
	StartedAt   *int64
	ExpiresAt   *int64
	TrialEndsAt *int64
	CancelledAt *int64

	// stamped from the last confirmed provider payment
	PaymentMethod string `gorm:"size:30"`
	PaymentKey    string `gorm:"size:200"`

	Account Account `gorm:"foreignKey:AccountID"`
}
