package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"atchub/cmd/fx/chat_fx"
	"atchub/cmd/fx/content_fx"
	"atchub/cmd/fx/controllers_fx"
	"atchub/cmd/fx/dashboard_fx"
	"atchub/cmd/fx/fleet_fx"
	"atchub/cmd/fx/identity_fx"
	"atchub/cmd/fx/raffle_fx"
	"atchub/cmd/fx/session_fx"
	"atchub/internal/api/controllers"
	mem "atchub/pkg/memcache"
	"atchub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		content_fx.Module,
		identity_fx.Module,
		fleet_fx.Module,
		raffle_fx.Module,
		session_fx.Module,
		dashboard_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	revoked mem.RevokedTokenStore,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	membersController *controllers.MembersController,
	fleetController *controllers.FleetController,
	raffleController *controllers.RaffleController,
	dashboardController *controllers.DashboardController,
	operationsController *controllers.OperationsController,
	chatController *controllers.ChatController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, revoked,
		authController, adminController, membersController, fleetController,
		raffleController, dashboardController, operationsController, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	revoked mem.RevokedTokenStore,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	membersController *controllers.MembersController,
	fleetController *controllers.FleetController,
	raffleController *controllers.RaffleController,
	dashboardController *controllers.DashboardController,
	operationsController *controllers.OperationsController,
	chatController *controllers.ChatController) {

	auth := r.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/register", authController.Register)
	auth.POST("/logout", middleware.JWTAuthMiddleware(revoked), authController.Logout)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(revoked))

	dashboard := authed.Group("/dashboard")
	dashboard.GET("/stats", dashboardController.Stats)
	dashboard.GET("/summary", dashboardController.Summary)
	dashboard.GET("/server-status", dashboardController.ServerStatus)

	members := authed.Group("/members")
	members.GET("", membersController.ListApproved)
	members.GET("/directory", membersController.Directory)
	members.PUT("/avatar", membersController.UpdateAvatar)
	members.PUT("/role", membersController.UpdateRole)
	members.POST("/ships", membersController.AddShip)
	members.DELETE("/ships/:id", membersController.RemoveShip)

	fleet := authed.Group("/fleet")
	fleet.GET("", fleetController.GetFleet)
	fleet.POST("", fleetController.AddShip)
	fleet.POST("/reload", fleetController.Reload)
	fleet.PUT("/:name", fleetController.UpdateShip)
	fleet.DELETE("/:name", fleetController.RemoveShip)

	raffles := authed.Group("/raffles")
	raffles.GET("/current", raffleController.Current)
	raffles.GET("/past", raffleController.Past)
	raffles.POST("/enter", raffleController.Enter)

	authed.GET("/operations", operationsController.List)

	chat := authed.Group("/chat")
	chat.GET("/history", chatController.History)
	chat.POST("/messages", chatController.Send)
	chat.GET("/gifs", chatController.SearchGifs)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	admin.GET("/accounts", adminController.ListAccounts)
	admin.POST("/accounts/:id/approve", adminController.Approve)
	admin.POST("/accounts/:id/deny", adminController.Deny)
	admin.DELETE("/accounts/:id", adminController.RemoveAccount)
	admin.POST("/raffles", adminController.StartRaffle)
	admin.POST("/raffles/draw", adminController.DrawWinner)
	admin.GET("/raffles/entries", adminController.ListEntries)
}
