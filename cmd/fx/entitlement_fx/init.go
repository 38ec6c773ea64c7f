package entitlement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"marryday/internal/api/controllers"
	"marryday/internal/repositories"
	"marryday/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideUsageRepo, provideEntitlementService, provideSubscriptionController)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideUsageRepo(db *gorm.DB) repositories.IUsageRepository {
	return repositories.NewUsageRepository(db)
}

func provideEntitlementService(
	subscriptionRepo repositories.ISubscriptionRepository,
	usageRepo repositories.IUsageRepository,
) services.EntitlementServiceInterface {
	return services.NewEntitlementService(subscriptionRepo, usageRepo)
}

func provideSubscriptionController(entitlementService services.EntitlementServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(entitlementService)
}
