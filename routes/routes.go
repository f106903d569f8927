package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"studio-console-backend/config"
	"studio-console-backend/controllers"
	"studio-console-backend/models"
	"studio-console-backend/seed"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Cfg *config.Config
	Log zerolog.Logger

	Auth       *stores.AuthStore
	Customers  *stores.CustomerStore
	Services   *stores.ServiceStore
	Activities *stores.ActivityStore
	Gateway    *stores.ServiceDataStore
	Owner      seed.OwnerAccount
}

// SetupRouter builds the engine with the guard chain: guest-only login
// routes, token-gated API, and per-role route groups.
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.PerformanceLogger(deps.Log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authController := &controllers.AuthController{Auth: deps.Auth, Owner: deps.Owner, Cfg: deps.Cfg}
	customerController := &controllers.CustomerController{Customers: deps.Customers}
	serviceController := &controllers.ServiceController{Services: deps.Services, Customers: deps.Customers}
	activityController := &controllers.ActivityController{Activities: deps.Activities}
	dataController := &controllers.ServiceDataController{Gateway: deps.Gateway}
	dashboardController := &controllers.DashboardController{
		Customers:  deps.Customers,
		Services:   deps.Services,
		Activities: deps.Activities,
	}

	secret := deps.Cfg.JWTSecret

	auth := r.Group("/auth")
	{
		auth.POST("/login", utils.RequireGuest(secret), authController.Login)
		auth.POST("/login/line", utils.RequireGuest(secret), authController.LineLogin)

		auth.Use(utils.AuthMiddleware(secret))
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(secret))
	{
		api.PUT("/profile", authController.UpdateProfile)

		owner := api.Group("", utils.RequireRole(models.RoleOwner))
		{
			customers := owner.Group("/customers")
			{
				customers.POST("", customerController.Create)
				customers.GET("", customerController.List)
				customers.GET("/:id", customerController.Get)
				customers.PUT("/:id", customerController.Update)
				customers.DELETE("/:id", customerController.Delete)

				customers.GET("/:id/activities", activityController.List)
				customers.POST("/:id/activities", activityController.Create)
				customers.PUT("/:id/activities/:activityId", activityController.Update)
				customers.DELETE("/:id/activities/:activityId", activityController.Delete)
				customers.GET("/:id/activities/stats", activityController.Stats)
				customers.GET("/:id/activities/recent", activityController.Recent)
				customers.GET("/:id/activities/upcoming", activityController.Upcoming)
				customers.GET("/:id/appointments", activityController.Appointments)
			}

			services := owner.Group("/services")
			{
				services.POST("", serviceController.Create)
				services.GET("", serviceController.List)
				services.GET("/records", serviceController.ListRecords)
				services.POST("/records", serviceController.CreateRecord)
				services.GET("/:id", serviceController.Get)
				services.PUT("/:id", serviceController.Update)
				services.DELETE("/:id", serviceController.Delete)
			}

			owner.GET("/revenue", serviceController.Revenue)
			owner.GET("/dashboard", dashboardController.Overview)
		}

		my := api.Group("/my", utils.RequireRole(models.RoleCustomer))
		{
			my.GET("/services", dataController.Services)
			my.GET("/profile", dataController.Profile)
			my.PUT("/profile", dataController.UpdateProfile)
			my.GET("/stats", dataController.Stats)
			my.GET("/recent", dataController.Recent)
			my.GET("/upcoming", dataController.Upcoming)
			my.POST("/reload", dataController.Reload)
		}
	}

	return r
}
