package session_fx

import (
	"os"

	"go.uber.org/fx"

	"atchub/internal/services"
	mem "atchub/pkg/memcache"
)

var Module = fx.Provide(
	provideRevokedTokens, provideSessionService)

func provideRevokedTokens() mem.RevokedTokenStore {
	return mem.NewRevokedTokens()
}

func provideSessionService(identity services.IdentityServiceInterface, fleet services.FleetServiceInterface, revoked mem.RevokedTokenStore) services.SessionServiceInterface {
	adminCallsign := os.Getenv("ADMIN_CALLSIGN")
	if adminCallsign == "" {
		adminCallsign = "ADMIN" // the one hard-wired admin identity
	}
	return services.NewSessionService(identity, fleet, revoked, adminCallsign)
}
