package dashboard_fx

import (
	"time"

	"go.uber.org/fx"

	"atchub/internal/repositories"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

var Module = fx.Provide(
	provideDashboardService, provideDirectoryService)

func provideDashboardService(identity services.IdentityServiceInterface, raffleRepo repositories.RaffleRepository, content utils.ContentClientInterface, timeout time.Duration) services.DashboardServiceInterface {
	return services.NewDashboardService(identity, raffleRepo, content, timeout)
}

func provideDirectoryService(content utils.ContentClientInterface, timeout time.Duration) services.DirectoryServiceInterface {
	return services.NewDirectoryService(content, timeout)
}
