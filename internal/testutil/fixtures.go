package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"marryday/internal/models/db_models"
)

// TestAccount inserts an account with sane defaults.
func TestAccount(t *testing.T, db *gorm.DB, opts ...func(*db_models.Account)) *db_models.Account {
	t.Helper()

	account := &db_models.Account{
		Name:         "테스트",
		Email:        fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456",
		Role:         "user",
	}

	for _, opt := range opts {
		opt(account)
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return account
}

// WithEmail overrides the generated email.
func WithEmail(email string) func(*db_models.Account) {
	return func(a *db_models.Account) {
		a.Email = email
	}
}

// WithRole overrides the default role.
func WithRole(role string) func(*db_models.Account) {
	return func(a *db_models.Account) {
		a.Role = role
	}
}

// TestSubscription inserts a subscription row for the account.
// Defaults to an active monthly plan expiring in 30 days.
func TestSubscription(t *testing.T, db *gorm.DB, account *db_models.Account, opts ...func(*db_models.Subscription)) *db_models.Subscription {
	t.Helper()

	now := time.Now().Unix()
	expires := now + 30*86400
	sub := &db_models.Subscription{
		AccountID: account.ID,
		Plan:      db_models.PlanMonthly,
		Status:    db_models.SubStatusActive,
		Price:     4900,
		StartedAt: &now,
		ExpiresAt: &expires,
	}

	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}

// WithPlan sets plan and status together.
func WithPlan(plan db_models.SubscriptionPlan, status db_models.SubscriptionStatus) func(*db_models.Subscription) {
	return func(s *db_models.Subscription) {
		s.Plan = plan
		s.Status = status
	}
}

// WithTrialEndsAt sets the trial end timestamp.
func WithTrialEndsAt(ts int64) func(*db_models.Subscription) {
	return func(s *db_models.Subscription) {
		s.TrialEndsAt = &ts
	}
}

// WithExpiresAt sets the expiry timestamp.
func WithExpiresAt(ts int64) func(*db_models.Subscription) {
	return func(s *db_models.Subscription) {
		s.ExpiresAt = &ts
	}
}

// TestProduct inserts an active product.
func TestProduct(t *testing.T, db *gorm.DB, opts ...func(*db_models.Product)) *db_models.Product {
	t.Helper()

	product := &db_models.Product{
		Name:     fmt.Sprintf("청첩장 세트 %d", time.Now().UnixNano()%10000),
		Category: "invitation",
		Price:    15000,
		Stock:    100,
		IsActive: true,
	}

	for _, opt := range opts {
		opt(product)
	}

	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}

	return product
}

// WithPrice overrides the product price.
func WithPrice(price int64) func(*db_models.Product) {
	return func(p *db_models.Product) {
		p.Price = price
	}
}

// WithActive toggles the product's availability.
func WithActive(active bool) func(*db_models.Product) {
	return func(p *db_models.Product) {
		p.IsActive = active
	}
}

// TestOrder inserts a pending order with a single item of the product.
func TestOrder(t *testing.T, db *gorm.DB, account *db_models.Account, product *db_models.Product, opts ...func(*db_models.Order)) *db_models.Order {
	t.Helper()

	order := &db_models.Order{
		AccountID:   account.ID,
		OrderNumber: fmt.Sprintf("MD-TEST-%d", time.Now().UnixNano()),
		Status:      db_models.OrderStatusPending,
		TotalAmount: product.Price,
		Items: []db_models.OrderItem{
			{ProductID: product.ID, Quantity: 1, UnitPrice: product.Price},
		},
	}

	for _, opt := range opts {
		opt(order)
	}

	if err := db.Create(order).Error; err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}

	return order
}

// WithOrderStatus overrides the order status.
func WithOrderStatus(status db_models.OrderStatus) func(*db_models.Order) {
	return func(o *db_models.Order) {
		o.Status = status
	}
}

// TestVendor inserts an active vendor.
func TestVendor(t *testing.T, db *gorm.DB, opts ...func(*db_models.Vendor)) *db_models.Vendor {
	t.Helper()

	vendor := &db_models.Vendor{
		Name:     fmt.Sprintf("웨딩홀 %d", time.Now().UnixNano()%10000),
		Category: "hall",
		Region:   "서울 강남",
		PriceMin: 500000,
		PriceMax: 2000000,
		IsActive: true,
	}

	for _, opt := range opts {
		opt(vendor)
	}

	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("Failed to create test vendor: %v", err)
	}

	return vendor
}
