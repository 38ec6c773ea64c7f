package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"marryday/internal/models/db_models"
	"marryday/internal/models/request_models"
	"marryday/internal/models/response_models"
	"marryday/internal/repositories"
	"marryday/pkg/tosspay"
	"marryday/pkg/utils"
)

type PaymentServiceInterface interface {
	// ConfirmOrderPayment verifies a storefront checkout with the
	// provider and marks the order paid.
	ConfirmOrderPayment(ctx context.Context, accountID uuid.UUID, req request_models.ConfirmPaymentRequest) (*response_models.ConfirmPaymentResponse, error)
	// ActivateSubscription verifies a subscription checkout and applies
	// its effect (trial grant or plan activation).
	ActivateSubscription(ctx context.Context, accountID uuid.UUID, req request_models.ActivateSubscriptionRequest) (*response_models.ConfirmPaymentResponse, error)
}

type PaymentService struct {
	gateway     tosspay.Gateway
	paymentRepo repositories.IPaymentRepository
	orderRepo   repositories.IOrderRepository
	entitlement EntitlementServiceInterface
}

func NewPaymentService(
	gateway tosspay.Gateway,
	paymentRepo repositories.IPaymentRepository,
	orderRepo repositories.IOrderRepository,
	entitlement EntitlementServiceInterface,
) PaymentServiceInterface {
	return &PaymentService{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		entitlement: entitlement,
	}
}

// The provider confirmation is the source of truth. Once it succeeds
// the caller must see success: every local write below it is
// best-effort and only logged on failure.
func (p *PaymentService) ConfirmOrderPayment(ctx context.Context, accountID uuid.UUID, req request_models.ConfirmPaymentRequest) (*response_models.ConfirmPaymentResponse, error) {
	confirmed, err := p.gateway.ConfirmPayment(ctx, req.PaymentKey, req.OrderID, req.Amount)
	if err != nil {
		return nil, err
	}

	p.recordPayment(ctx, accountID, confirmed)

	updated, err := p.orderRepo.MarkPaid(ctx, req.OrderID, accountID)
	if err != nil {
		log.Printf("confirm payment %s: mark order %s paid failed: %v", req.PaymentKey, req.OrderID, err)
	} else if !updated {
		log.Printf("confirm payment %s: no pending order %s for account %s", req.PaymentKey, req.OrderID, accountID)
	}

	return &response_models.ConfirmPaymentResponse{
		Success: true,
		Payment: confirmed.Raw,
	}, nil
}

func (p *PaymentService) ActivateSubscription(ctx context.Context, accountID uuid.UUID, req request_models.ActivateSubscriptionRequest) (*response_models.ConfirmPaymentResponse, error) {
	var plan db_models.SubscriptionPlan
	switch req.Type {
	case "trial", "monthly":
		plan = db_models.PlanMonthly
	case "yearly":
		plan = db_models.PlanYearly
	default:
		return nil, utils.ErrInvalidCheckout
	}

	confirmed, err := p.gateway.ConfirmPayment(ctx, req.PaymentKey, req.OrderID, req.Amount)
	if err != nil {
		return nil, err
	}

	p.recordPayment(ctx, accountID, confirmed)

	meta := &PaymentMeta{Method: confirmed.Method, PaymentKey: confirmed.PaymentKey}
	if req.Type == "trial" {
		if err := p.entitlement.StartTrial(ctx, accountID, meta); err != nil {
			log.Printf("activate %s: start trial failed for account %s: %v", req.PaymentKey, accountID, err)
		}
	} else {
		if err := p.entitlement.Subscribe(ctx, accountID, plan, meta); err != nil {
			log.Printf("activate %s: subscribe %s failed for account %s: %v", req.PaymentKey, plan, accountID, err)
		}
	}

	// The trial charge only verifies the card; refund it right away.
	// A failed refund is logged and the trial still activates.
	if req.Type == "trial" && req.Amount == TrialVerificationAmount {
		if _, err := p.gateway.CancelPayment(ctx, req.PaymentKey, "trial card verification refund"); err != nil {
			log.Printf("activate %s: trial refund failed, account %s stays charged %d: %v",
				req.PaymentKey, accountID, req.Amount, err)
		} else if err := p.paymentRepo.MarkRefunded(ctx, req.PaymentKey); err != nil {
			log.Printf("activate %s: mark refunded failed: %v", req.PaymentKey, err)
		}
	}

	return &response_models.ConfirmPaymentResponse{
		Success: true,
		Payment: confirmed.Raw,
	}, nil
}

func (p *PaymentService) recordPayment(ctx context.Context, accountID uuid.UUID, confirmed *tosspay.Payment) {
	payment := &db_models.Payment{
		AccountID:   accountID,
		PaymentKey:  confirmed.PaymentKey,
		OrderNumber: confirmed.OrderID,
		Amount:      confirmed.TotalAmount,
		Status:      db_models.PaymentStatusApproved,
		Method:      confirmed.Method,
		RawResponse: datatypes.JSON(confirmed.Raw),
	}
	if t, err := time.Parse(time.RFC3339, confirmed.ApprovedAt); err == nil {
		approvedAt := t.Unix()
		payment.ApprovedAt = &approvedAt
	}

	// payment_key is unique, so a duplicated confirm lands here and is
	// only logged
	if err := p.paymentRepo.Insert(ctx, payment); err != nil {
		log.Printf("record payment %s: insert failed: %v", confirmed.PaymentKey, err)
	}
}
