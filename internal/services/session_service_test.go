package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atchub/internal/models/db_models"
	"atchub/internal/repositories"
	mem "atchub/pkg/memcache"
	"atchub/pkg/utils"
)

func sessionFixture(t *testing.T) (SessionServiceInterface, FleetServiceInterface, *mem.RevokedTokens) {
	t.Helper()
	identity := NewIdentityService(repositories.NewInMemoryAccountRepository())
	fleet := NewFleetService(repositories.NewInMemoryFleetRepository(), &contentStub{
		fleet: []db_models.FleetShip{{Name: "Invictus", Model: "Aegis Hammerhead", Role: db_models.RoleCapital, Status: db_models.StatusInService}},
	}, time.Second)
	revoked := mem.NewRevokedTokens()
	return NewSessionService(identity, fleet, revoked, "ADMIN"), fleet, revoked
}

func TestLogin_IssuesTokenAndFlagsAdmin(t *testing.T) {
	svc, _, _ := sessionFixture(t)

	resp, err := svc.Login("ADMIN", "Gracin8386")
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Callsign)
	assert.True(t, claims.IsAdmin)
}

func TestLogin_RegularMemberIsNotAdmin(t *testing.T) {
	svc, _, _ := sessionFixture(t)

	resp, err := svc.Login("Recker", "password123")
	require.NoError(t, err)
	assert.False(t, resp.IsAdmin)
	assert.Equal(t, "Recker", resp.Callsign)
}

func TestLogin_FailureIsGeneric(t *testing.T) {
	svc, _, _ := sessionFixture(t)

	_, err := svc.Login("Recker", "wrong")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login("Newbie", "password123")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_TriggersOneFleetLoad(t *testing.T) {
	svc, fleet, _ := sessionFixture(t)

	_, err := svc.Login("Recker", "password123")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return fleet.State().Loaded
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLogout_RevokesTokenAndClearsFleet(t *testing.T) {
	svc, fleet, revoked := sessionFixture(t)

	resp, err := svc.Login("Recker", "password123")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return fleet.State().Loaded }, 2*time.Second, 10*time.Millisecond)

	svc.Logout(resp.Token)

	assert.True(t, revoked.IsRevoked(resp.Token))
	assert.False(t, fleet.State().Loaded)
}
