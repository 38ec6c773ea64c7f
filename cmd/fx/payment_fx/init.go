package payment_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"marryday/internal/api/controllers"
	"marryday/internal/repositories"
	"marryday/internal/services"
	"marryday/pkg/tosspay"
)

var Module = fx.Provide(
	provideGateway, providePaymentRepo, providePaymentService, providePaymentController)

func provideGateway() tosspay.Gateway {
	return tosspay.NewClient(tosspay.Config{
		SecretKey: os.Getenv("TOSS_SECRET_KEY"),
		BaseURL:   os.Getenv("TOSS_BASE_URL"), // empty = production
	})
}

func providePaymentRepo(db *gorm.DB) repositories.IPaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	gateway tosspay.Gateway,
	paymentRepo repositories.IPaymentRepository,
	orderRepo repositories.IOrderRepository,
	entitlementService services.EntitlementServiceInterface,
) services.PaymentServiceInterface {
	return services.NewPaymentService(gateway, paymentRepo, orderRepo, entitlementService)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
