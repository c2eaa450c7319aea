package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"loanflow.backend/internal/interfaces/http/handlers"
	"loanflow.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	applicationHandler *handlers.ApplicationHandler
	loanTypeHandler    *handlers.LoanTypeHandler
	userHandler        *handlers.UserHandler
	transactionHandler *handlers.TransactionHandler
	dashboardHandler   *handlers.DashboardHandler
	authMiddleware     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Loan type catalog (public read)
		loanTypes := v1.Group("/loan-types")
		{
			loanTypes.GET("", d.loanTypeHandler.ListLoanTypes)
			loanTypes.POST("/calculate", d.loanTypeHandler.Calculate)
			loanTypes.POST("", d.authMiddleware, middleware.RequireAdmin(), d.loanTypeHandler.CreateLoanType)
		}

		// Application routes (protected)
		applications := v1.Group("/applications")
		applications.Use(d.authMiddleware)
		{
			applications.POST("", middleware.IdempotencyMiddleware(), d.applicationHandler.CreateApplication)
			applications.POST("/validate-step", d.applicationHandler.ValidateStep)
			applications.GET("", d.applicationHandler.ListMyApplications)
			applications.GET("/:id", d.applicationHandler.GetApplication)
		}

		// Profile routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("/me", d.userHandler.GetMe)
			users.PUT("/me", d.userHandler.UpdateMe)
			users.GET("/me/completeness", d.userHandler.GetCompleteness)
		}

		// Transaction routes (protected)
		transactions := v1.Group("/transactions")
		transactions.Use(d.authMiddleware)
		{
			transactions.GET("", d.transactionHandler.ListMyTransactions)
		}

		// Dashboard (protected)
		v1.GET("/dashboard", d.authMiddleware, d.dashboardHandler.GetDashboard)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/applications", d.applicationHandler.ListApplications)
			admin.PUT("/applications/:id/status", d.applicationHandler.UpdateStatus)
			admin.POST("/applications/:id/repayments", d.applicationHandler.RecordRepayment)
			admin.GET("/applications/:id/transactions", d.transactionHandler.ListApplicationTransactions)
			admin.GET("/users", d.userHandler.ListCustomers)
			admin.PUT("/users/:id/contact", d.userHandler.UpdateContact)
			admin.GET("/transactions", d.transactionHandler.ListTransactions)
		}
	}
}
