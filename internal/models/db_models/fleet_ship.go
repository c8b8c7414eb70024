package db_models

type FleetRole string

const (
	RoleCapital    FleetRole = "Capital"
	RoleExplorer   FleetRole = "Explorer"
	RoleFighter    FleetRole = "Fighter"
	RoleIndustrial FleetRole = "Industrial"
	RoleSupport    FleetRole = "Support"
)

type FleetStatus string

const (
	StatusInService   FleetStatus = "In Service"
	StatusOnMission   FleetStatus = "On Mission"
	StatusUnderRepair FleetStatus = "Under Repair"
)

// FleetShip is an org-wide catalogue entry. Name is the identity for edits and
// removal; two ships sharing a name collide on the first match.
type FleetShip struct {
	Name        string      `json:"name"`
	Model       string      `json:"model"`
	Role        FleetRole   `json:"role"`
	Status      FleetStatus `json:"status"`
	ImageURL    string      `json:"imageUrl"`
	Description string      `json:"description"`
}

func ValidFleetRole(r string) bool {
	switch FleetRole(r) {
	case RoleCapital, RoleExplorer, RoleFighter, RoleIndustrial, RoleSupport:
		return true
	}
	return false
}

func ValidFleetStatus(s string) bool {
	switch FleetStatus(s) {
	case StatusInService, StatusOnMission, StatusUnderRepair:
		return true
	}
	return false
}
