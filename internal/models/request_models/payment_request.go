package request_models

// ConfirmPaymentRequest is what the checkout success page sends back
// after the hosted widget redirects. All three fields come from the
// provider redirect and are required.
type ConfirmPaymentRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

// ActivateSubscriptionRequest adds the checkout type discriminator.
// Type "trial" is the 100 KRW card-verification flow; the charge is
// refunded right after confirmation.
type ActivateSubscriptionRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
	Type       string `json:"type"` // trial, monthly, yearly
}
