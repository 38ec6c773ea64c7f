package response_models

import "github.com/google/uuid"

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"`
}

type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
}

type OrderResponse struct {
	OrderNumber string              `json:"order_number"`
	Status      string              `json:"status"`
	TotalAmount int64               `json:"total_amount"`
	CreatedAt   int64               `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
}
