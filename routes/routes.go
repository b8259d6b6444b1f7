package routes

import (
	"go-postgres-carbooks/controllers"
	"go-postgres-carbooks/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)

			authed := auth.Group("/", middlewares.Auth())
			authed.GET("/profile", controllers.Profile)
			authed.PUT("/profile/password", controllers.ChangePassword)
		}

		// everything below needs a session
		app := api.Group("/", middlewares.Auth())

		// user management is admin territory
		users := app.Group("/users", middlewares.RequireRole("admin"))
		{
			users.GET("/", controllers.GetAllUsers)
			users.POST("/", controllers.CreateUser)
			users.PUT("/:id/role", controllers.SetUserRole)
			users.PUT("/:id/deactivate", controllers.DeactivateUser)
		}

		vehicles := app.Group("/vehicles")
		{
			vehicles.GET("/", controllers.GetAllVehicles)
			vehicles.GET("/:chassis", controllers.GetVehicleByChassis)
			vehicles.POST("/", controllers.CreateVehicle)
			vehicles.PUT("/:chassis", controllers.UpdateVehicle)
			vehicles.PUT("/:chassis/costs", controllers.UpdateVehicleCosts)
			vehicles.PUT("/:chassis/status", controllers.SetVehicleStatus)
			vehicles.DELETE("/:chassis", middlewares.RequireRole("admin"), controllers.DeleteVehicle)
		}

		advances := app.Group("/advances")
		{
			advances.GET("/:chassis", controllers.GetAdvance)
			advances.POST("/:chassis", controllers.CreateAdvance)
			advances.POST("/:chassis/payments", controllers.AddAdvancePayment)
			advances.GET("/:chassis/payments", controllers.ListAdvancePayments)
		}

		sales := app.Group("/sales")
		{
			sales.POST("/", controllers.BeginSale)
			sales.POST("/:token/confirm", controllers.ConfirmSale)
			sales.POST("/:token/cancel", controllers.CancelSale)
			sales.GET("/:chassis", controllers.GetSale)
		}

		leases := app.Group("/leases")
		{
			leases.GET("/", controllers.ListLeaseCollections)
			leases.PUT("/:id/collect", controllers.CollectLease)
		}

		invoices := app.Group("/invoices")
		{
			invoices.POST("/:chassis", controllers.GenerateInvoice)
			invoices.GET("/:chassis/letterhead", controllers.LetterheadInvoice)
			invoices.GET("/:chassis/receipts/:paymentID", controllers.AdvanceReceipt)
			invoices.GET("/:chassis/summary", controllers.TransactionSummary)
		}

		reports := app.Group("/reports", middlewares.RequireRole("admin"))
		{
			reports.GET("/vehicles", controllers.ReportVehicles)
			reports.GET("/sales", controllers.ReportSales)
			reports.GET("/profit", controllers.ReportMonthlyProfit)
		}

		app.GET("/exchange-rate", controllers.GetExchangeRate)
	}
}
