package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atchub/internal/models/db_models"
)

func fleetShip(name string) db_models.FleetShip {
	return db_models.FleetShip{
		Name:   name,
		Model:  "Aegis Hammerhead",
		Role:   db_models.RoleCapital,
		Status: db_models.StatusInService,
	}
}

func TestPopulate_MarksCatalogueLoaded(t *testing.T) {
	repo := NewInMemoryFleetRepository()
	assert.False(t, repo.Loaded())

	repo.Populate([]db_models.FleetShip{fleetShip("Invictus")})

	assert.True(t, repo.Loaded())
	assert.Len(t, repo.List(), 1)
}

func TestAddFront_InsertsMostRecentFirst(t *testing.T) {
	repo := NewInMemoryFleetRepository()
	repo.AddFront(fleetShip("First"))
	repo.AddFront(fleetShip("Second"))

	ships := repo.List()
	require.Len(t, ships, 2)
	assert.Equal(t, "Second", ships[0].Name)
	assert.Equal(t, "First", ships[1].Name)
}

func TestRemoveByName_DuplicateNamesRemoveExactlyFirstMatch(t *testing.T) {
	repo := NewInMemoryFleetRepository()
	older := fleetShip("Odyssey")
	older.Model = "Anvil Carrack"
	newer := fleetShip("Odyssey")
	newer.Model = "Origin 600i"
	repo.AddFront(older)
	repo.AddFront(newer)

	assert.True(t, repo.RemoveByName("Odyssey"))

	ships := repo.List()
	require.Len(t, ships, 1)
	assert.Equal(t, "Anvil Carrack", ships[0].Model, "the first match in catalogue order is the one removed")
}

func TestUpdateByName_ReplacesFullRecord(t *testing.T) {
	repo := NewInMemoryFleetRepository()
	repo.AddFront(fleetShip("Invictus"))

	replacement := fleetShip("Indomitable")
	replacement.Status = db_models.StatusUnderRepair
	assert.True(t, repo.UpdateByName("Invictus", replacement))

	ships := repo.List()
	require.Len(t, ships, 1)
	assert.Equal(t, "Indomitable", ships[0].Name)
	assert.Equal(t, db_models.StatusUnderRepair, ships[0].Status)
}

func TestUpdateByName_NoMatchIsNoOp(t *testing.T) {
	repo := NewInMemoryFleetRepository()
	repo.AddFront(fleetShip("Invictus"))

	assert.False(t, repo.UpdateByName("Ghost", fleetShip("Ghost")))
	assert.Equal(t, "Invictus", repo.List()[0].Name)
}

func TestUpdateDescription_TargetsFirstMatch(t *testing.T) {
	repo := NewInMemoryFleetRepository()
	repo.AddFront(fleetShip("Invictus"))

	repo.UpdateDescription("Invictus", "Escort carrier for long patrols.")

	assert.Equal(t, "Escort carrier for long patrols.", repo.List()[0].Description)
}

func TestReset_ClearsShipsAndLoadedFlag(t *testing.T) {
	repo := NewInMemoryFleetRepository()
	repo.Populate([]db_models.FleetShip{fleetShip("Invictus")})

	repo.Reset()

	assert.False(t, repo.Loaded())
	assert.Empty(t, repo.List())
}
