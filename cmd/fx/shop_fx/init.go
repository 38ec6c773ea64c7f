package shop_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"marryday/internal/api/controllers"
	"marryday/internal/repositories"
	"marryday/internal/services"
)

var Module = fx.Provide(
	provideProductRepo, provideOrderRepo, provideOrderService, provideOrderController)

func provideProductRepo(db *gorm.DB) repositories.IProductRepository {
	return repositories.NewProductRepository(db)
}

func provideOrderRepo(db *gorm.DB) repositories.IOrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(orderRepo repositories.IOrderRepository, productRepo repositories.IProductRepository) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, productRepo)
}

func provideOrderController(orderService services.OrderServiceInterface) *controllers.OrderController {
	return controllers.NewOrderController(orderService)
}
