package db_models

import (
	"github.com/google/uuid"
)

// AIUsage counts assistant messages per account and calendar day.
// UsageDate is the date portion only ("2006-01-02"); the quota reset
// boundary is the calendar day.
type AIUsage struct {
	BaseModel
	AccountID    uuid.UUID `gorm:"uniqueIndex:idx_ai_usage_account_date;not null"`
	UsageDate    string    `gorm:"size:10;uniqueIndex:idx_ai_usage_account_date;not null"`
	MessageCount int       `gorm:"default:0"`
}

func (AIUsage) TableName() string {
	return "ai_usage_daily"
}
