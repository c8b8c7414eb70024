package identity_fx

import (
	"go.uber.org/fx"

	"atchub/internal/repositories"
	"atchub/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideIdentityService)

func provideAccountRepo() repositories.AccountRepository {
	return repositories.NewInMemoryAccountRepository()
}

func provideIdentityService(accountRepo repositories.AccountRepository) services.IdentityServiceInterface {
	return services.NewIdentityService(accountRepo)
}
