package response_models

import "encoding/json"

// ConfirmPaymentResponse wraps the raw provider payload. The payload
// is forwarded untouched so the client sees exactly what the provider
// approved.
type ConfirmPaymentResponse struct {
	Success bool            `json:"success"`
	Payment json.RawMessage `json:"payment"`
}
