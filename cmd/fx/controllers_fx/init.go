package controllers_fx

import (
	"go.uber.org/fx"

	"atchub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewMembersController),
	fx.Provide(controllers.NewFleetController),
	fx.Provide(controllers.NewRaffleController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewOperationsController),
	fx.Provide(controllers.NewChatController))
