package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

func TestRaffleLifecycle(t *testing.T) {
	svc := NewRaffleService(repositories.NewInMemoryRaffleRepository())

	started, err := svc.Start("Origin 600i", time.Now().Add(72*time.Hour))
	require.NoError(t, err)
	assert.True(t, started.IsActive)

	require.NoError(t, svc.Enter("Recker"))
	require.NoError(t, svc.Enter("Viper"))
	require.NoError(t, svc.Enter("Recker"), "repeat entries are accepted and ignored")

	overview := svc.Overview("Recker")
	assert.True(t, overview.HasEntered)
	assert.Equal(t, 2, overview.Entries)

	concluded, err := svc.DrawWinner()
	require.NoError(t, err)
	assert.Contains(t, []string{"Recker", "Viper"}, concluded.Winner)
	assert.False(t, concluded.IsActive)

	assert.ErrorIs(t, svc.Enter("Newbie"), utils.ErrNoActiveRaffle)

	_, err = svc.DrawWinner()
	assert.ErrorIs(t, err, utils.ErrNoActiveRaffle)
}

func TestStart_RejectsIncompleteInput(t *testing.T) {
	svc := NewRaffleService(repositories.NewInMemoryRaffleRepository())

	_, err := svc.Start("", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Start("Origin 600i", time.Time{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestOverview_NoActiveRaffle(t *testing.T) {
	repo := repositories.NewInMemoryRaffleRepository()
	svc := NewRaffleService(repo)
	_, err := svc.DrawWinner()
	require.NoError(t, err)

	overview := svc.Overview("Recker")
	assert.Nil(t, overview.Current)
	assert.False(t, overview.HasEntered)
	assert.Zero(t, overview.Entries)
}
