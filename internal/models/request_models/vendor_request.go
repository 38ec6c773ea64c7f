package request_models

type VendorSearchRequest struct {
	Query string `json:"query" binding:"required,min=2"`
}
