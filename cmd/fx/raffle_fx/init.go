package raffle_fx

import (
	"go.uber.org/fx"

	"atchub/internal/repositories"
	"atchub/internal/services"
)

var Module = fx.Provide(
	provideRaffleRepo, provideRaffleService)

func provideRaffleRepo() repositories.RaffleRepository {
	return repositories.NewInMemoryRaffleRepository()
}

func provideRaffleService(raffleRepo repositories.RaffleRepository) services.RaffleServiceInterface {
	return services.NewRaffleService(raffleRepo)
}
