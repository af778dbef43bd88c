package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/egresados/internal/app/controllers"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/middleware"
)

// Controllers groups every HTTP handler set mounted by SetupRouter
type Controllers struct {
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Basic      *controllers.BasicInformationController
	Academic   *controllers.AcademicInformationController
	Employment *controllers.EmploymentInformationController
	Profile    *controllers.ProfileController
	News       *controllers.NewsController
	Location   *controllers.LocationController
	Reports    *controllers.ReportController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", controllers.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/health", controllers.Health)
	v1.GET("/catalog", controllers.Catalog)

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	news := v1.Group("/news")
	{
		news.GET("", c.News.ListNews)
		news.GET("/:id", c.News.GetNews)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", c.Auth.Me)

		authenticated.GET("/basicInformation", c.Basic.Index)
		authenticated.POST("/basicInformation", c.Basic.Store)

		academic := authenticated.Group("/academicInformation")
		{
			academic.GET("", c.Academic.Index)
			academic.POST("", c.Academic.Store)
			academic.DELETE("", c.Academic.DestroyMultiple)
			academic.PUT("/:id", c.Academic.Update)
			academic.DELETE("/:id", c.Academic.Destroy)
			academic.GET("/:id/certificate", c.Academic.Certificate)
		}

		employment := authenticated.Group("/employmentInformation")
		{
			employment.GET("", c.Employment.Index)
			employment.POST("", c.Employment.Store)
			employment.DELETE("", c.Employment.DestroyMultiple)
			employment.PUT("/:id", c.Employment.Update)
			employment.DELETE("/:id", c.Employment.Destroy)
		}

		authenticated.GET("/location", c.Location.Index)
		authenticated.POST("/location", c.Location.Store)

		// Administrators and coordinators
		staff := authenticated.Group("")
		staff.Use(authMiddleware.StaffOnly())
		{
			staff.GET("/myProfile", c.Profile.Index)
			staff.POST("/myProfile", c.Profile.Store)

			staff.GET("/locations", c.Location.List)

			reports := staff.Group("/graduateReports")
			{
				reports.GET("", c.Reports.Index)
				reports.GET("/graduates", c.Reports.Graduates)
				reports.GET("/export", c.Reports.Export)
			}

			staff.POST("/news", c.News.CreateNews)
			staff.PUT("/news/:id", c.News.UpdateNews)
			staff.DELETE("/news/:id", c.News.DeleteNews)
		}

		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.GET("", c.Users.ListUsers)
			users.POST("", c.Users.CreateUser)
			users.GET("/:id", c.Users.GetUser)
			users.PUT("/:id", c.Users.UpdateUser)
			users.DELETE("/:id", c.Users.DeleteUser)
			users.PATCH("/:id/status", c.Users.UpdateUserStatus)
		}
	}
}
