package response_models

type LoginResponse struct {
	Token    string `json:"token"`
	Callsign string `json:"callsign"`
	IsAdmin  bool   `json:"isAdmin"`
}
