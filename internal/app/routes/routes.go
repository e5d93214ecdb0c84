package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/controllers"
	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	scholarshipController *controllers.ScholarshipController,
	applicationController *controllers.ApplicationController,
	reviewController *controllers.ReviewController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET("/scholarships", scholarshipController.List)
	router.GET("/filtered", scholarshipController.ListSorted)
	router.GET("/searched", scholarshipController.Search)
	router.GET("/scholarship-details/:id", scholarshipController.Details)
	router.GET("/reviews", reviewController.List)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.Authenticated())
	{
		authenticated.POST("/registration", userController.Register)
		authenticated.GET("/users/role/:email", userController.GetUserRole)

		// Payment workflow
		authenticated.POST("/payment-checkout-session", applicationController.CreateCheckoutSession)
		authenticated.POST("/save-payment-session", applicationController.SavePendingSession)
		authenticated.GET("/payment/verify", applicationController.VerifyPayment)
		authenticated.GET("/payment-history", applicationController.PaymentHistory)

		// Applications owned by the caller
		authenticated.GET("/applications", applicationController.ListMine)
		authenticated.DELETE("/applications/:scholarshipId", applicationController.DeletePending)
		authenticated.GET("/applications/feedback/:email", applicationController.FeedbackByEmail)

		// Reviews
		authenticated.POST("/reviews", reviewController.Create)

		// Dashboard
		authenticated.GET("/dashboard-stats", dashboardController.Stats)

		// Admin-only routes
		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.GET("/users", userController.ListUsers)
			adminOnly.PATCH("/users/role/:id", userController.UpdateUserRole)
			adminOnly.POST("/create-scholarship", scholarshipController.Create)
			adminOnly.DELETE("/scholarships/:id", scholarshipController.Delete)
		}

		// Admin or moderator routes
		staffOnly := authenticated.Group("")
		staffOnly.Use(authMiddleware.RequireAnyRole(models.RoleAdmin, models.RoleModerator))
		{
			staffOnly.PATCH("/update-scholarship/:id", scholarshipController.Update)
			staffOnly.GET("/applications/paid", applicationController.ListPaid)
			staffOnly.PATCH("/applications/feedback/:id", applicationController.SetFeedback)
			staffOnly.DELETE("/reviews/:id", reviewController.Delete)
		}
	}

	// Status endpoint (public)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "running"})
	})

	// Unknown routes get a stable JSON envelope instead of gin's default
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status": http.StatusNotFound,
			"error":  "API not found",
		})
	})
}
