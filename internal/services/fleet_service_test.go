package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atchub/internal/models/db_models"
	"atchub/internal/models/request_models"
	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

func catalogueShip(name string) db_models.FleetShip {
	return db_models.FleetShip{
		Name:   name,
		Model:  "Aegis Hammerhead",
		Role:   db_models.RoleCapital,
		Status: db_models.StatusInService,
	}
}

func TestEnsureLoaded_FetchesOnceAndGuardsRepeats(t *testing.T) {
	stub := &contentStub{fleet: []db_models.FleetShip{catalogueShip("Invictus")}}
	svc := NewFleetService(repositories.NewInMemoryFleetRepository(), stub, time.Second)

	svc.EnsureLoaded()
	svc.EnsureLoaded()
	svc.EnsureLoaded()

	assert.Equal(t, 1, stub.fetchCount(), "a populated catalogue is never refetched")
	state := svc.State()
	assert.True(t, state.Loaded)
	require.Len(t, state.Ships, 1)
	assert.Empty(t, state.Error)
}

func TestEnsureLoaded_FailureStaysRetryable(t *testing.T) {
	stub := &contentStub{}
	stub.setFleet(nil, errors.New("provider down"))
	svc := NewFleetService(repositories.NewInMemoryFleetRepository(), stub, time.Second)

	svc.EnsureLoaded()

	state := svc.State()
	assert.False(t, state.Loaded)
	assert.Equal(t, "Failed to fetch fleet data.", state.Error)

	stub.setFleet([]db_models.FleetShip{catalogueShip("Invictus")}, nil)
	svc.EnsureLoaded()

	state = svc.State()
	assert.True(t, state.Loaded)
	assert.Empty(t, state.Error)
	assert.Len(t, state.Ships, 1)
}

func TestAddShip_RejectsUnknownRoleOrStatus(t *testing.T) {
	stub := &contentStub{}
	svc := NewFleetService(repositories.NewInMemoryFleetRepository(), stub, time.Second)

	_, err := svc.AddShip(request_models.AddFleetShipRequest{
		Name: "Invictus", Model: "Aegis Hammerhead", Role: "Battleship", Status: "In Service",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.AddShip(request_models.AddFleetShipRequest{
		Name: "Invictus", Model: "Aegis Hammerhead", Role: "Capital", Status: "Scuttled",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddShip_InsertsImmediatelyThenEnrichesDescription(t *testing.T) {
	stub := &contentStub{blurb: "A gun-bristling escort built to hold the line."}
	repo := repositories.NewInMemoryFleetRepository()
	svc := NewFleetService(repo, stub, time.Second)

	ship, err := svc.AddShip(request_models.AddFleetShipRequest{
		Name: "Invictus", Model: "Aegis Hammerhead", Role: "Capital", Status: "In Service",
	})
	require.NoError(t, err)

	assert.Equal(t, utils.FallbackShipBlurb, ship.Description, "the insert never waits for the provider")
	assert.Equal(t, utils.ShipImageURLFor("Aegis Hammerhead"), ship.ImageURL)

	require.Eventually(t, func() bool {
		ships := repo.List()
		return len(ships) == 1 && ships[0].Description == "A gun-bristling escort built to hold the line."
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUpdateShip_MissingNameIsSilentNoOp(t *testing.T) {
	stub := &contentStub{}
	repo := repositories.NewInMemoryFleetRepository()
	repo.AddFront(catalogueShip("Invictus"))
	svc := NewFleetService(repo, stub, time.Second)

	err := svc.UpdateShip("Ghost", request_models.UpdateFleetShipRequest{
		Name: "Ghost", Model: "Aegis Hammerhead", Role: "Capital", Status: "In Service",
	})
	require.NoError(t, err)
	assert.Equal(t, "Invictus", repo.List()[0].Name)
}

func TestResetCatalogue_ClearsStateAndError(t *testing.T) {
	stub := &contentStub{}
	stub.setFleet(nil, errors.New("provider down"))
	repo := repositories.NewInMemoryFleetRepository()
	svc := NewFleetService(repo, stub, time.Second)

	svc.EnsureLoaded()
	require.NotEmpty(t, svc.State().Error)

	svc.ResetCatalogue()

	state := svc.State()
	assert.Empty(t, state.Error)
	assert.False(t, state.Loaded)
	assert.Empty(t, state.Ships)
}
