package fleet_fx

import (
	"time"

	"go.uber.org/fx"

	"atchub/internal/repositories"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

var Module = fx.Provide(
	provideFleetRepo, provideFleetService)

func provideFleetRepo() repositories.FleetRepository {
	return repositories.NewInMemoryFleetRepository()
}

func provideFleetService(fleetRepo repositories.FleetRepository, content utils.ContentClientInterface, timeout time.Duration) services.FleetServiceInterface {
	return services.NewFleetService(fleetRepo, content, timeout)
}
