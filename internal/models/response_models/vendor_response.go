package response_models

import "github.com/google/uuid"

type VendorSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Region    string    `json:"region"`
	PriceMin  int64     `json:"price_min"`
	PriceMax  int64     `json:"price_max"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	ViewCount int64     `json:"view_count"`
}

type VendorDetail struct {
	VendorSummary
	Description string `json:"description"`
}
