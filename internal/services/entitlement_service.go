package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"marryday/internal/models/db_models"
	"marryday/internal/models/response_models"
	"marryday/internal/repositories"
	"marryday/pkg/utils"
)

// Pricing is fixed; the client renders the same table.
const (
	PriceMonthly            int64 = 4900
	PriceYearly             int64 = 39000
	TrialVerificationAmount int64 = 100

	TrialDays             = 30
	FreeDailyMessageLimit = 3
)

// PaymentMeta is stamped onto the subscription row when a plan change
// comes out of a confirmed provider payment. Nil for the free trial
// button and other non-payment mutations.
type PaymentMeta struct {
	Method     string
	PaymentKey string
}

type EntitlementServiceInterface interface {
	GetEntitlement(ctx context.Context, accountID uuid.UUID) (*response_models.Entitlement, error)
	StartTrial(ctx context.Context, accountID uuid.UUID, meta *PaymentMeta) error
	Subscribe(ctx context.Context, accountID uuid.UUID, plan db_models.SubscriptionPlan, meta *PaymentMeta) error
	Cancel(ctx context.Context, accountID uuid.UUID) error
}

type EntitlementService struct {
	subscriptionRepo repositories.ISubscriptionRepository
	usageRepo        repositories.IUsageRepository
}

func NewEntitlementService(
	subscriptionRepo repositories.ISubscriptionRepository,
	usageRepo repositories.IUsageRepository,
) EntitlementServiceInterface {
	return &EntitlementService{
		subscriptionRepo: subscriptionRepo,
		usageRepo:        usageRepo,
	}
}

// BuildEntitlement derives the read model from the stored row and the
// clock. A nil row is an implicit free-plan row with no timestamps.
func BuildEntitlement(sub *db_models.Subscription, usedToday int, now time.Time) response_models.Entitlement {
	plan := db_models.PlanFree
	status := db_models.SubStatusActive
	var trialEndsAt, expiresAt *int64

	if sub != nil {
		plan = sub.Plan
		status = sub.Status
		trialEndsAt = sub.TrialEndsAt
		expiresAt = sub.ExpiresAt
	}

	trialFuture := trialEndsAt != nil && *trialEndsAt > now.Unix()
	expiryFuture := expiresAt != nil && *expiresAt > now.Unix()

	// A cancelled subscription keeps its paid window: premium holds
	// until expires_at passes, cancellation only stops renewal.
	statusOK := status == db_models.SubStatusActive ||
		(status == db_models.SubStatusCancelled && expiryFuture)

	isPremium := plan != db_models.PlanFree &&
		statusOK &&
		(trialFuture || expiryFuture)

	var trialDaysLeft *int
	if trialEndsAt != nil {
		days := 0
		if secs := *trialEndsAt - now.Unix(); secs > 0 {
			days = int((secs + 86399) / 86400) // ceiling in whole days
		}
		trialDaysLeft = &days
	}

	usage := response_models.DailyUsage{Used: usedToday}
	if !isPremium {
		limit := FreeDailyMessageLimit
		remaining := limit - usedToday
		if remaining < 0 {
			remaining = 0
		}
		usage.Limit = &limit
		usage.Remaining = &remaining
	}

	return response_models.Entitlement{
		Plan:          string(plan),
		IsPremium:     isPremium,
		IsTrialActive: trialFuture,
		TrialDaysLeft: trialDaysLeft,
		ExpiresAt:     expiresAt,
		DailyUsage:    usage,
	}
}

func (e *EntitlementService) GetEntitlement(ctx context.Context, accountID uuid.UUID) (*response_models.Entitlement, error) {
	sub, err := e.subscriptionRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	used, err := e.usageRepo.CountForDay(ctx, accountID, utils.DateKey(time.Now()))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entitlement := BuildEntitlement(sub, used, time.Now())
	return &entitlement, nil
}

func (e *EntitlementService) StartTrial(ctx context.Context, accountID uuid.UUID, meta *PaymentMeta) error {
	now := time.Now().Unix()
	trialEnd := now + int64(TrialDays)*86400

	sub := &db_models.Subscription{
		AccountID:   accountID,
		Plan:        db_models.PlanMonthly,
		Status:      db_models.SubStatusActive,
		Price:       0,
		StartedAt:   &now,
		ExpiresAt:   &trialEnd,
		TrialEndsAt: &trialEnd,
	}
	applyPaymentMeta(sub, meta)

	if err := e.subscriptionRepo.Upsert(ctx, sub); err != nil {
		log.Printf("start trial: upsert failed for account %s: %v", accountID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *EntitlementService) Subscribe(ctx context.Context, accountID uuid.UUID, plan db_models.SubscriptionPlan, meta *PaymentMeta) error {
	now := time.Now()
	startedAt := now.Unix()

	var price int64
	var expiresAt int64
	switch plan {
	case db_models.PlanMonthly:
		price = PriceMonthly
		expiresAt = now.AddDate(0, 1, 0).Unix()
	case db_models.PlanYearly:
		price = PriceYearly
		expiresAt = now.AddDate(1, 0, 0).Unix()
	default:
		return utils.ErrInvalidPlan
	}

	sub := &db_models.Subscription{
		AccountID: accountID,
		Plan:      plan,
		Status:    db_models.SubStatusActive,
		Price:     price,
		StartedAt: &startedAt,
		ExpiresAt: &expiresAt,
		// trial and cancellation markers are cleared by the upsert
		TrialEndsAt: nil,
		CancelledAt: nil,
	}
	applyPaymentMeta(sub, meta)

	if err := e.subscriptionRepo.Upsert(ctx, sub); err != nil {
		log.Printf("subscribe: upsert failed for account %s: %v", accountID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (e *EntitlementService) Cancel(ctx context.Context, accountID uuid.UUID) error {
	updated, err := e.subscriptionRepo.Cancel(ctx, accountID, time.Now().Unix())
	if err != nil {
		log.Printf("cancel: update failed for account %s: %v", accountID, err)
		return utils.ErrDatabaseError
	}
	if !updated {
		return utils.ErrAccountNotFound
	}
	return nil
}

func applyPaymentMeta(sub *db_models.Subscription, meta *PaymentMeta) {
	if meta == nil {
		return
	}
	sub.PaymentMethod = meta.Method
	sub.PaymentKey = meta.PaymentKey
}
