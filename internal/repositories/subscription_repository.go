package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marryday/internal/models/db_models"
)

type ISubscriptionRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	// Upsert writes the row keyed on account_id; exactly one row per
	// account can exist, last write wins.
	Upsert(ctx context.Context, sub *db_models.Subscription) error
	// Cancel flips status only. ExpiresAt stays untouched so a
	// cancelled-but-unexpired subscription keeps its grace period.
	Cancel(ctx context.Context, accountID uuid.UUID, cancelledAt int64) (bool, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (s *SubscriptionRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionRepository) Upsert(ctx context.Context, sub *db_models.Subscription) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"plan", "status", "price",
			"started_at", "expires_at", "trial_ends_at", "cancelled_at",
			"payment_method", "payment_key", "updated_at",
		}),
	}).Create(sub).Error
}

func (s *SubscriptionRepository) Cancel(ctx context.Context, accountID uuid.UUID, cancelledAt int64) (bool, error) {
	res := s.db.WithContext(ctx).Model(&db_models.Subscription{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{
			"status":       db_models.SubStatusCancelled,
			"cancelled_at": cancelledAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
