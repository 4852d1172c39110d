package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/middlewares"
	"github.com/yeremiapane/restaurant-pos/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	groupCtrl := controllers.NewGroupController(db)
	foodCtrl := controllers.NewFoodController(db)
	tableCtrl := controllers.NewTableController(db)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	staff := middlewares.RequireRoles(models.RoleWaiter, models.RoleManager, models.RoleAdmin)
	managers := middlewares.RequireRoles(models.RoleManager, models.RoleAdmin)
	admins := middlewares.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.GET("/profile", userCtrl.GetProfile)

	// DINING GROUPS
	groups := api.Group("/groups")
	{
		groups.POST("/create", staff, groupCtrl.CreateGroup)
		groups.POST("/:group_id/add-item", staff, groupCtrl.AddItem)
		groups.POST("/:group_id/add-items", staff, groupCtrl.AddItems)
		groups.PUT("/:group_id/items/:item_id", staff, groupCtrl.UpdateItemQuantity)
		groups.DELETE("/:group_id/items/:item_id", staff, groupCtrl.RemoveItem)
		groups.POST("/:group_id/submit", staff, groupCtrl.SubmitGroup)
		groups.POST("/:group_id/pay", staff, groupCtrl.MarkGroupAsPaid)

		groups.GET("/submitted", staff, groupCtrl.GetSubmittedGroups)
		groups.GET("/unsubmitted", staff, groupCtrl.GetUnsubmittedGroups)
		groups.GET("/paid", staff, groupCtrl.GetPaidGroups)
		groups.GET("/unpaid", staff, groupCtrl.GetUnpaidGroups)
		groups.GET("/all", managers, groupCtrl.GetAllGroups)

		groups.GET("/:group_id", staff, groupCtrl.GetGroupByID)
		groups.GET("/:group_id/items", staff, groupCtrl.GetGroupItems)
		groups.DELETE("/:group_id", staff, groupCtrl.DeleteGroup)
	}

	// FOOD CATALOG
	foods := api.Group("/foods")
	{
		foods.GET("", foodCtrl.GetAllFoods)
		foods.POST("", managers, foodCtrl.CreateFood)
		foods.PUT("/:food_id", managers, foodCtrl.UpdateFood)
		foods.DELETE("/:food_id", admins, foodCtrl.DeleteFood)
	}

	// TABLES
	api.GET("/tables", tableCtrl.GetAllTables)
	api.POST("/tables", managers, tableCtrl.CreateTable)

	// REPORTS (admin only)
	reports := api.Group("/admin/reports", admins)
	{
		reports.GET("/top-selling-foods", reportCtrl.GetTopSellingFoods)
		reports.GET("/least-selling-foods", reportCtrl.GetLeastSellingFoods)
		reports.GET("/monthly-sales", reportCtrl.GetMonthlySales)
		reports.GET("/table-usage", reportCtrl.GetTableUsage)
	}

	return r
}
