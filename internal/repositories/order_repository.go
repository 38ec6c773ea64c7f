package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marryday/internal/models/db_models"
)

type IOrderRepository interface {
	Create(ctx context.Context, order *db_models.Order) error
	GetByOrderNumber(ctx context.Context, orderNumber string, accountID uuid.UUID) (*db_models.Order, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error)
	// MarkPaid transitions pending -> paid, scoped to the owning
	// account. Returns false when nothing matched (wrong owner,
	// unknown order, or already paid).
	MarkPaid(ctx context.Context, orderNumber string, accountID uuid.UUID) (bool, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (o *OrderRepository) Create(ctx context.Context, order *db_models.Order) error {
	return o.db.WithContext(ctx).Create(order).Error
}

func (o *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string, accountID uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := o.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&order, "order_number = ? AND account_id = ?", orderNumber, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (o *OrderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderRepository) MarkPaid(ctx context.Context, orderNumber string, accountID uuid.UUID) (bool, error) {
	res := o.db.WithContext(ctx).Model(&db_models.Order{}).
		Where("order_number = ? AND account_id = ? AND status = ?",
			orderNumber, accountID, db_models.OrderStatusPending).
		Update("status", db_models.OrderStatusPaid)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
