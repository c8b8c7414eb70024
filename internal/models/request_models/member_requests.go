package request_models

type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatarUrl" binding:"required,url"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type AddOwnedShipRequest struct {
	Model    string `json:"model" binding:"required"`
	ImageURL string `json:"imageUrl"`
}
