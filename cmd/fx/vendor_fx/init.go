package vendor_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"marryday/internal/api/controllers"
	"marryday/internal/repositories"
	"marryday/internal/services"
	"marryday/pkg/utils"
)

var Module = fx.Provide(
	provideVendorRepo, provideVendorService, provideVendorController)

func provideVendorRepo(db *gorm.DB) repositories.IVendorRepository {
	return repositories.NewVendorRepository(db)
}

func provideVendorService(vendorRepo repositories.IVendorRepository, aiClient utils.AIClientInterface) services.VendorServiceInterface {
	return services.NewVendorService(vendorRepo, aiClient)
}

func provideVendorController(vendorService services.VendorServiceInterface) *controllers.VendorController {
	return controllers.NewVendorController(vendorService)
}
