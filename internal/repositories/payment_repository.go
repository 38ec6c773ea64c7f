package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marryday/internal/models/db_models"
)

type IPaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	GetByPaymentKey(ctx context.Context, paymentKey string) (*db_models.Payment, error)
	MarkRefunded(ctx context.Context, paymentKey string) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Payment, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

func (p *PaymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Create(payment).Error
}

func (p *PaymentRepository) GetByPaymentKey(ctx context.Context, paymentKey string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := p.db.WithContext(ctx).First(&payment, "payment_key = ?", paymentKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (p *PaymentRepository) MarkRefunded(ctx context.Context, paymentKey string) error {
	return p.db.WithContext(ctx).Model(&db_models.Payment{}).
		Where("payment_key = ?", paymentKey).
		Update("status", db_models.PaymentStatusRefunded).Error
}

func (p *PaymentRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
