package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atchub/internal/models/db_models"
	"atchub/pkg/utils"
)

func findByCallsign(t *testing.T, repo AccountRepository, callsign string) db_models.Account {
	t.Helper()
	account := repo.FindByCallsign(callsign)
	require.NotNil(t, account)
	return *account
}

func TestRegister_CreatesPendingRecruitWithStarterShip(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	account, err := repo.Register("Rook", "hash")
	require.NoError(t, err)

	assert.Equal(t, db_models.AccessPending, account.AccessStatus)
	assert.Equal(t, "Recruit", account.Role)
	require.Len(t, account.Ships, 1)
	assert.Equal(t, StarterShipModel, account.Ships[0].Model)
	assert.NotZero(t, account.ID)
}

func TestRegister_DuplicateCallsignIsCaseInsensitive(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	before := len(repo.List())

	_, err := repo.Register("recker", "hash")
	assert.ErrorIs(t, err, utils.ErrCallsignTaken)
	assert.Len(t, repo.List(), before, "a rejected registration must not mutate the store")
}

func TestRegister_AssignsDistinctIDsUnderRapidCalls(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	a, err := repo.Register("First", "hash")
	require.NoError(t, err)
	b, err := repo.Register("Second", "hash")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSetApproval_IsIdempotent(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	newbie := findByCallsign(t, repo, "Newbie")

	repo.SetApproval(newbie.ID, db_models.AccessApproved)
	repo.SetApproval(newbie.ID, db_models.AccessApproved)

	assert.Equal(t, db_models.AccessApproved, findByCallsign(t, repo, "Newbie").AccessStatus)
}

func TestSetApproval_UnknownIDIsNoOp(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	before := repo.List()

	repo.SetApproval(123456789, db_models.AccessApproved)

	assert.Equal(t, before, repo.List())
}

func TestRemove_DeletesAccountAndShips(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	viper := findByCallsign(t, repo, "Viper")

	repo.Remove(viper.ID)

	assert.Nil(t, repo.FindByCallsign("Viper"))
}

func TestUpdateRole_AddressesByExactCallsign(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	repo.UpdateRole("Recker", "Fleet Admiral")
	assert.Equal(t, "Fleet Admiral", findByCallsign(t, repo, "Recker").Role)

	// Callsign is the natural key and matches exactly for self-service writes.
	repo.UpdateRole("recker", "Deck Hand")
	assert.Equal(t, "Fleet Admiral", findByCallsign(t, repo, "Recker").Role)
}

func TestUpdateAvatar_ReplacesField(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	repo.UpdateAvatar("Viper", "https://example.com/viper.png")

	assert.Equal(t, "https://example.com/viper.png", findByCallsign(t, repo, "Viper").AvatarURL)
}

func TestAddShip_AppendsToOwnerOnly(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	before := len(findByCallsign(t, repo, "Recker").Ships)

	ship := repo.AddShip("Viper", "RSI Constellation", "")
	require.NotNil(t, ship)

	assert.Len(t, findByCallsign(t, repo, "Viper").Ships, 3)
	assert.Len(t, findByCallsign(t, repo, "Recker").Ships, before)
}

func TestAddShip_UnknownCallsignReturnsNil(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	assert.Nil(t, repo.AddShip("Ghost", "RSI Constellation", ""))
}

func TestRemoveShip_RemovesByID(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	viper := findByCallsign(t, repo, "Viper")
	require.NotEmpty(t, viper.Ships)

	repo.RemoveShip("Viper", viper.Ships[0].ID)

	after := findByCallsign(t, repo, "Viper")
	assert.Len(t, after.Ships, len(viper.Ships)-1)
	for _, s := range after.Ships {
		assert.NotEqual(t, viper.Ships[0].ID, s.ID)
	}
}
