package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marryday/internal/models/request_models"
	"marryday/internal/models/response_models"
	"marryday/pkg/tosspay"
)

type stubPaymentService struct {
	confirmResp  *response_models.ConfirmPaymentResponse
	confirmErr   error
	activateResp *response_models.ConfirmPaymentResponse
	activateErr  error

	gotConfirm  *request_models.ConfirmPaymentRequest
	gotActivate *request_models.ActivateSubscriptionRequest
}

func (s *stubPaymentService) ConfirmOrderPayment(ctx context.Context, accountID uuid.UUID, req request_models.ConfirmPaymentRequest) (*response_models.ConfirmPaymentResponse, error) {
	s.gotConfirm = &req
	return s.confirmResp, s.confirmErr
}

func (s *stubPaymentService) ActivateSubscription(ctx context.Context, accountID uuid.UUID, req request_models.ActivateSubscriptionRequest) (*response_models.ConfirmPaymentResponse, error) {
	s.gotActivate = &req
	return s.activateResp, s.activateErr
}

func paymentTestRouter(svc *stubPaymentService, accountID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if accountID != "" {
			c.Set("user_id", accountID)
		}
	})

	controller := NewPaymentController(svc)
	r.POST("/api/v1/payments/confirm", controller.ConfirmPayment)
	r.POST("/api/v1/subscriptions/confirm", controller.ActivateSubscription)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConfirmPaymentHandler_Success(t *testing.T) {
	svc := &stubPaymentService{
		confirmResp: &response_models.ConfirmPaymentResponse{
			Success: true,
			Payment: json.RawMessage(`{"status":"DONE"}`),
		},
	}
	r := paymentTestRouter(svc, uuid.NewString())

	w := postJSON(t, r, "/api/v1/payments/confirm", gin.H{
		"paymentKey": "pk_1",
		"orderId":    "order_1",
		"amount":     4900,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotConfirm)
	assert.Equal(t, "pk_1", svc.gotConfirm.PaymentKey)
	assert.Equal(t, int64(4900), svc.gotConfirm.Amount)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Success bool            `json:"success"`
			Payment json.RawMessage `json:"payment"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.True(t, body.Data.Success)
	assert.JSONEq(t, `{"status":"DONE"}`, string(body.Data.Payment))
}

func TestConfirmPaymentHandler_Unauthenticated(t *testing.T) {
	svc := &stubPaymentService{}
	r := paymentTestRouter(svc, "")

	w := postJSON(t, r, "/api/v1/payments/confirm", gin.H{
		"paymentKey": "pk_1",
		"orderId":    "order_1",
		"amount":     4900,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, svc.gotConfirm, "service must not be reached without identity")
}

func TestConfirmPaymentHandler_MissingFields(t *testing.T) {
	svc := &stubPaymentService{}
	r := paymentTestRouter(svc, uuid.NewString())

	w := postJSON(t, r, "/api/v1/payments/confirm", gin.H{
		"paymentKey": "pk_1",
		"amount":     4900,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotConfirm)
}

func TestConfirmPaymentHandler_ForwardsProviderCode(t *testing.T) {
	svc := &stubPaymentService{
		confirmErr: &tosspay.APIError{
			HTTPStatus: 400,
			Code:       "REJECT_CARD_COMPANY",
			Message:    "카드사에서 승인을 거절했습니다.",
		},
	}
	r := paymentTestRouter(svc, uuid.NewString())

	w := postJSON(t, r, "/api/v1/payments/confirm", gin.H{
		"paymentKey": "pk_1",
		"orderId":    "order_1",
		"amount":     4900,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Status    string `json:"status"`
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "REJECT_CARD_COMPANY", body.ErrorCode)
	assert.Equal(t, "카드사에서 승인을 거절했습니다.", body.Message)
}

func TestActivateSubscriptionHandler_Success(t *testing.T) {
	svc := &stubPaymentService{
		activateResp: &response_models.ConfirmPaymentResponse{
			Success: true,
			Payment: json.RawMessage(`{"status":"DONE"}`),
		},
	}
	r := paymentTestRouter(svc, uuid.NewString())

	w := postJSON(t, r, "/api/v1/subscriptions/confirm", gin.H{
		"paymentKey": "pk_trial",
		"orderId":    "sub_1",
		"amount":     100,
		"type":       "trial",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotActivate)
	assert.Equal(t, "trial", svc.gotActivate.Type)
}

func TestActivateSubscriptionHandler_MissingType(t *testing.T) {
	svc := &stubPaymentService{}
	r := paymentTestRouter(svc, uuid.NewString())

	w := postJSON(t, r, "/api/v1/subscriptions/confirm", gin.H{
		"paymentKey": "pk_trial",
		"orderId":    "sub_1",
		"amount":     100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotActivate)
}
