package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"marryday/internal/api/controllers"
	"marryday/internal/repositories"
	"marryday/internal/services"
	mem "marryday/pkg/memcache"
)

var Module = fx.Provide(
	provideRevokedTokens, provideAccountRepo, provideAccountService, provideAccountController)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, revoked mem.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, revoked)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
