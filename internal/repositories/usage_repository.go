package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marryday/internal/models/db_models"
)

type IUsageRepository interface {
	// CountForDay returns the message count for the calendar day;
	// missing row means zero.
	CountForDay(ctx context.Context, accountID uuid.UUID, dateKey string) (int, error)
	// Increment bumps the counter via upsert on (account_id, usage_date).
	Increment(ctx context.Context, accountID uuid.UUID, dateKey string) error
}

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) IUsageRepository {
	return &UsageRepository{db: db}
}

func (u *UsageRepository) CountForDay(ctx context.Context, accountID uuid.UUID, dateKey string) (int, error) {
	var usage db_models.AIUsage
	err := u.db.WithContext(ctx).
		First(&usage, "account_id = ? AND usage_date = ?", accountID, dateKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return usage.MessageCount, nil
}

func (u *UsageRepository) Increment(ctx context.Context, accountID uuid.UUID, dateKey string) error {
	usage := db_models.AIUsage{
		AccountID:    accountID,
		UsageDate:    dateKey,
		MessageCount: 1,
	}
	return u.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "usage_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"message_count": gorm.Expr("message_count + 1"),
		}),
	}).Create(&usage).Error
}
