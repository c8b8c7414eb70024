package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atchub/internal/models/db_models"
	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

func dashboardFixture(stub *contentStub) (DashboardServiceInterface, IdentityServiceInterface, repositories.RaffleRepository) {
	identity := NewIdentityService(repositories.NewInMemoryAccountRepository())
	raffleRepo := repositories.NewInMemoryRaffleRepository()
	return NewDashboardService(identity, raffleRepo, stub, time.Second), identity, raffleRepo
}

func TestStats_CountsApprovedAccountsOnly(t *testing.T) {
	svc, identity, _ := dashboardFixture(&contentStub{})

	stats := svc.Stats("Recker")
	assert.Equal(t, 3, stats.TotalMembers, "the seeded pending and denied accounts do not count")
	assert.Equal(t, 7, stats.TotalShips)

	// A fresh registration is pending and contributes nothing until approved.
	account, err := identity.Register("Rook", "hunter2hunter2")
	require.NoError(t, err)

	stats = svc.Stats("Recker")
	assert.Equal(t, 3, stats.TotalMembers)
	assert.Equal(t, 7, stats.TotalShips)

	identity.SetApproval(account.ID, db_models.AccessApproved)

	stats = svc.Stats("Recker")
	assert.Equal(t, 4, stats.TotalMembers)
	assert.Equal(t, 8, stats.TotalShips, "approval brings the starter ship into the total")
}

func TestStats_ReflectsCurrentRaffleAndEntry(t *testing.T) {
	svc, _, raffleRepo := dashboardFixture(&contentStub{})
	raffleRepo.Enter("Recker")

	stats := svc.Stats("Recker")
	require.NotNil(t, stats.CurrentRaffle)
	assert.True(t, stats.HasEntered)

	stats = svc.Stats("Viper")
	assert.False(t, stats.HasEntered)
}

func TestSummary_WrapsProviderFailure(t *testing.T) {
	stub := &contentStub{summaryErr: errors.New("provider down")}
	svc, _, _ := dashboardFixture(stub)

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, utils.ErrContentUnavailable)
}

func TestServerStatus_PassesThroughKnownKeyword(t *testing.T) {
	stub := &contentStub{status: db_models.ServerDegraded}
	svc, _, _ := dashboardFixture(stub)

	status, err := svc.ServerStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, db_models.ServerDegraded, status)
}
