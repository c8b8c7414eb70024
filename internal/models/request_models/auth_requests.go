package request_models

type LoginRequest struct {
	Callsign string `json:"callsign" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Callsign string `json:"callsign" binding:"required,min=2,max=32"`
	Password string `json:"password" binding:"required,min=6"`
}
