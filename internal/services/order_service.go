package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"marryday/internal/models/db_models"
	"marryday/internal/models/request_models"
	"marryday/internal/models/response_models"
	"marryday/internal/repositories"
	"marryday/pkg/utils"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, accountID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.OrderResponse, error)
	GetOrder(ctx context.Context, accountID uuid.UUID, orderNumber string) (*response_models.OrderResponse, error)
	ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderResponse, error)
	ListProducts(ctx context.Context, category string, page, pageSize int) ([]response_models.ProductResponse, error)
}

type OrderService struct {
	orderRepo   repositories.IOrderRepository
	productRepo repositories.IProductRepository
}

func NewOrderService(orderRepo repositories.IOrderRepository, productRepo repositories.IProductRepository) OrderServiceInterface {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (o *OrderService) CreateOrder(ctx context.Context, accountID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, utils.ErrEmptyOrder
	}

	var total int64
	items := make([]db_models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := o.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if product == nil {
			return nil, utils.ErrProductNotFound
		}
		total += product.Price * int64(item.Quantity)
		items = append(items, db_models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	order := &db_models.Order{
		AccountID:   accountID,
		OrderNumber: newOrderNumber(),
		Status:      db_models.OrderStatusPending,
		TotalAmount: total,
		Items:       items,
	}
	if err := o.orderRepo.Create(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := o.orderRepo.GetByOrderNumber(ctx, order.OrderNumber, accountID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toOrderResponse(*created)
	return &resp, nil
}

func (o *OrderService) GetOrder(ctx context.Context, accountID uuid.UUID, orderNumber string) (*response_models.OrderResponse, error) {
	order, err := o.orderRepo.GetByOrderNumber(ctx, orderNumber, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	resp := toOrderResponse(*order)
	return &resp, nil
}

func (o *OrderService) ListOrders(ctx context.Context, accountID uuid.UUID) ([]response_models.OrderResponse, error) {
	orders, err := o.orderRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	return result, nil
}

func (o *OrderService) ListProducts(ctx context.Context, category string, page, pageSize int) ([]response_models.ProductResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	products, err := o.productRepo.List(ctx, category, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		resp := response_models.ProductResponse{
			ID:       product.ID,
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price,
			ImageURL: product.ImageURL,
			Stock:    product.Stock,
		}
		if product.Description != nil {
			resp.Description = *product.Description
		}
		result = append(result, resp)
	}
	return result, nil
}

// newOrderNumber builds the client-visible order id the provider
// checkout is correlated with.
func newOrderNumber() string {
	return fmt.Sprintf("MD%s-%06d", time.Now().Format("20060102150405"), rand.Intn(1_000_000))
}

func toOrderResponse(order db_models.Order) response_models.OrderResponse {
	items := make([]response_models.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, response_models.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return response_models.OrderResponse{
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}
