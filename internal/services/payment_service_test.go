package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marryday/internal/models/db_models"
	"marryday/internal/models/request_models"
	"marryday/internal/repositories"
	"marryday/internal/testutil"
	"marryday/pkg/tosspay"
	"marryday/pkg/utils"
)

type fakeGateway struct {
	confirmErr   error
	cancelErr    error
	confirmCalls int
	cancelCalls  int

	lastCancelKey string
}

func (f *fakeGateway) ConfirmPayment(ctx context.Context, paymentKey, orderID string, amount int64) (*tosspay.Payment, error) {
	f.confirmCalls++
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	raw := fmt.Sprintf(`{"paymentKey":%q,"orderId":%q,"status":"DONE","totalAmount":%d,"method":"카드","approvedAt":%q}`,
		paymentKey, orderID, amount, time.Now().Format(time.RFC3339))
	return &tosspay.Payment{
		PaymentKey:  paymentKey,
		OrderID:     orderID,
		Status:      "DONE",
		TotalAmount: amount,
		Method:      "카드",
		ApprovedAt:  time.Now().Format(time.RFC3339),
		Raw:         json.RawMessage(raw),
	}, nil
}

func (f *fakeGateway) CancelPayment(ctx context.Context, paymentKey, reason string) (*tosspay.Payment, error) {
	f.cancelCalls++
	f.lastCancelKey = paymentKey
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	return &tosspay.Payment{PaymentKey: paymentKey, Status: "CANCELED"}, nil
}

type paymentFixture struct {
	db          *gorm.DB
	gateway     *fakeGateway
	paymentRepo repositories.IPaymentRepository
	orderRepo   repositories.IOrderRepository
	subRepo     repositories.ISubscriptionRepository
	svc         PaymentServiceInterface
}

func setupPaymentService(t *testing.T) *paymentFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	gateway := &fakeGateway{}
	paymentRepo := repositories.NewPaymentRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	subRepo := repositories.NewSubscriptionRepository(db)
	entitlement := NewEntitlementService(subRepo, repositories.NewUsageRepository(db))

	return &paymentFixture{
		db:          db,
		gateway:     gateway,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		subRepo:     subRepo,
		svc:         NewPaymentService(gateway, paymentRepo, orderRepo, entitlement),
	}
}

func TestConfirmOrderPayment_Success(t *testing.T) {
	f := setupPaymentService(t)
	account := testutil.TestAccount(t, f.db)
	product := testutil.TestProduct(t, f.db)
	order := testutil.TestOrder(t, f.db, account, product)

	resp, err := f.svc.ConfirmOrderPayment(context.Background(), account.ID, request_models.ConfirmPaymentRequest{
		PaymentKey: "pk_1",
		OrderID:    order.OrderNumber,
		Amount:     order.TotalAmount,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Payment)

	payment, err := f.paymentRepo.GetByPaymentKey(context.Background(), "pk_1")
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, db_models.PaymentStatusApproved, payment.Status)
	assert.Equal(t, order.TotalAmount, payment.Amount)
	assert.Contains(t, string(payment.RawResponse), `"paymentKey":"pk_1"`, "provider payload is kept for audit")

	updated, err := f.orderRepo.GetByOrderNumber(context.Background(), order.OrderNumber, account.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, db_models.OrderStatusPaid, updated.Status)
}

func TestConfirmOrderPayment_ProviderRejects(t *testing.T) {
	f := setupPaymentService(t)
	account := testutil.TestAccount(t, f.db)
	product := testutil.TestProduct(t, f.db)
	order := testutil.TestOrder(t, f.db, account, product)

	f.gateway.confirmErr = &tosspay.APIError{
		HTTPStatus: 400,
		Code:       "INVALID_CARD_COMPANY",
		Message:    "유효하지 않은 카드사입니다.",
	}

	_, err := f.svc.ConfirmOrderPayment(context.Background(), account.ID, request_models.ConfirmPaymentRequest{
		PaymentKey: "pk_bad",
		OrderID:    order.OrderNumber,
		Amount:     order.TotalAmount,
	})

	var apiErr *tosspay.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CARD_COMPANY", apiErr.Code)

	// nothing was written locally
	payment, err := f.paymentRepo.GetByPaymentKey(context.Background(), "pk_bad")
	require.NoError(t, err)
	assert.Nil(t, payment)

	stored, err := f.orderRepo.GetByOrderNumber(context.Background(), order.OrderNumber, account.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.OrderStatusPending, stored.Status)
}

func TestConfirmOrderPayment_WrongAccountKeepsOrderPending(t *testing.T) {
	f := setupPaymentService(t)
	owner := testutil.TestAccount(t, f.db)
	other := testutil.TestAccount(t, f.db)
	product := testutil.TestProduct(t, f.db)
	order := testutil.TestOrder(t, f.db, owner, product)

	// confirmation succeeds at the provider, so the caller still gets
	// success, but the stranger cannot flip someone else's order
	resp, err := f.svc.ConfirmOrderPayment(context.Background(), other.ID, request_models.ConfirmPaymentRequest{
		PaymentKey: "pk_2",
		OrderID:    order.OrderNumber,
		Amount:     order.TotalAmount,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	stored, err := f.orderRepo.GetByOrderNumber(context.Background(), order.OrderNumber, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.OrderStatusPending, stored.Status)
}

func TestConfirmOrderPayment_DuplicateConfirm(t *testing.T) {
	f := setupPaymentService(t)
	account := testutil.TestAccount(t, f.db)
	product := testutil.TestProduct(t, f.db)
	order := testutil.TestOrder(t, f.db, account, product)

	req := request_models.ConfirmPaymentRequest{
		PaymentKey: "pk_dup",
		OrderID:    order.OrderNumber,
		Amount:     order.TotalAmount,
	}

	_, err := f.svc.ConfirmOrderPayment(context.Background(), account.ID, req)
	require.NoError(t, err)
	resp, err := f.svc.ConfirmOrderPayment(context.Background(), account.ID, req)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var count int64
	require.NoError(t, f.db.Model(&db_models.Payment{}).Where("payment_key = ?", "pk_dup").Count(&count).Error)
	assert.Equal(t, int64(1), count, "payment_key is unique, the duplicate insert must not land")
}

func TestActivateSubscription_Trial(t *testing.T) {
	f := setupPaymentService(t)
	account := testutil.TestAccount(t, f.db)

	resp, err := f.svc.ActivateSubscription(context.Background(), account.ID, request_models.ActivateSubscriptionRequest{
		PaymentKey: "pk_trial",
		OrderID:    "sub_trial_1",
		Amount:     TrialVerificationAmount,
		Type:       "trial",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	// the verification charge is refunded exactly once
	assert.Equal(t, 1, f.gateway.cancelCalls)
	assert.Equal(t, "pk_trial", f.gateway.lastCancelKey)

	payment, err := f.paymentRepo.GetByPaymentKey(context.Background(), "pk_trial")
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, db_models.PaymentStatusRefunded, payment.Status)

	sub, err := f.subRepo.GetByAccountID(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, db_models.PlanMonthly, sub.Plan)
	assert.NotNil(t, sub.TrialEndsAt)
	assert.Equal(t, int64(0), sub.Price)
}

func TestActivateSubscription_TrialRefundFails(t *testing.T) {
	f := setupPaymentService(t)
	account := testutil.TestAccount(t, f.db)
	f.gateway.cancelErr = &tosspay.APIError{HTTPStatus: 500, Code: "FAILED_INTERNAL_SYSTEM_PROCESSING", Message: "internal"}

	resp, err := f.svc.ActivateSubscription(context.Background(), account.ID, request_models.ActivateSubscriptionRequest{
		PaymentKey: "pk_trial_nr",
		OrderID:    "sub_trial_2",
		Amount:     TrialVerificationAmount,
		Type:       "trial",
	})
	require.NoError(t, err, "a failed refund must not fail the activation")
	assert.True(t, resp.Success)

	payment, err := f.paymentRepo.GetByPaymentKey(context.Background(), "pk_trial_nr")
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, db_models.PaymentStatusApproved, payment.Status, "charge stays on the card")

	sub, err := f.subRepo.GetByAccountID(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.NotNil(t, sub.TrialEndsAt, "trial still activates")
}

func TestActivateSubscription_Yearly(t *testing.T) {
	f := setupPaymentService(t)
	account := testutil.TestAccount(t, f.db)

	resp, err := f.svc.ActivateSubscription(context.Background(), account.ID, request_models.ActivateSubscriptionRequest{
		PaymentKey: "pk_year",
		OrderID:    "sub_year_1",
		Amount:     PriceYearly,
		Type:       "yearly",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, f.gateway.cancelCalls, "paid plans are never refunded here")

	sub, err := f.subRepo.GetByAccountID(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, db_models.PlanYearly, sub.Plan)
	assert.Equal(t, PriceYearly, sub.Price)
	assert.Equal(t, "pk_year", sub.PaymentKey)
}

func TestActivateSubscription_UnknownType(t *testing.T) {
	f := setupPaymentService(t)
	account := testutil.TestAccount(t, f.db)

	_, err := f.svc.ActivateSubscription(context.Background(), account.ID, request_models.ActivateSubscriptionRequest{
		PaymentKey: "pk_x",
		OrderID:    "sub_x",
		Amount:     100,
		Type:       "weekly",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCheckout)
	assert.Equal(t, 0, f.gateway.confirmCalls, "checkout type is validated before charging")
}
