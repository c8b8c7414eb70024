package request_models

type AddFleetShipRequest struct {
	Name     string `json:"name" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Status   string `json:"status" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// UpdateFleetShipRequest replaces the whole record of the ship addressed by
// the path name, including the name itself.
type UpdateFleetShipRequest struct {
	Name        string `json:"name" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Status      string `json:"status" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}
