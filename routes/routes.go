package routes

import (
	"github.com/sakibmorshed/assignment-11-new-serverside/handlers"
	"github.com/sakibmorshed/assignment-11-new-serverside/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	r.POST("/jwt", handlers.IssueToken)

	// ── Users ──────────────────────────────────────────────────────
	r.POST("/users", handlers.CreateUser)
	r.GET("/users", handlers.ListUsers)
	r.GET("/users/:email", handlers.GetUser)
	r.PATCH("/users/fraud/:id", handlers.MarkFraud)

	// ── Role-upgrade requests ──────────────────────────────────────
	r.POST("/requests", handlers.SubmitRequest)
	r.GET("/requests", handlers.ListRequests)
	r.PATCH("/requests/:id", handlers.ResolveRequest)

	// ── Meals ──────────────────────────────────────────────────────
	r.POST("/meals", middleware.AuthRequired(), handlers.CreateMeal)
	r.GET("/meals", handlers.ListMeals)
	r.GET("/meals/chef/:email", middleware.AuthRequired(), handlers.MealsByChef)
	r.GET("/meals/:id", handlers.GetMeal)
	r.PATCH("/meals/:id", middleware.AuthRequired(), handlers.UpdateMeal)
	r.DELETE("/meals/:id", middleware.AuthRequired(), handlers.DeleteMeal)

	// ── Reviews ────────────────────────────────────────────────────
	r.POST("/reviews", handlers.CreateReview)
	r.GET("/reviews", handlers.ListReviews)
	r.GET("/reviews/meal/:mealId", handlers.ReviewsByMeal)
	r.PATCH("/reviews/:id", handlers.UpdateReview)
	r.DELETE("/reviews/:id", handlers.DeleteReview)

	// ── Orders ─────────────────────────────────────────────────────
	r.POST("/orders", handlers.CreateOrder)
	r.GET("/orders/chef/:chefId", handlers.OrdersByChef)
	r.GET("/orders/:email", handlers.OrdersByUser)
	r.PATCH("/orders/status/:id", handlers.UpdateOrderStatus)
	r.PATCH("/orders/payment/:id", handlers.MarkOrderPaid)
	r.GET("/order/:id", handlers.GetOrder)
	r.GET("/order-lifecycle", handlers.GetOrderLifecycle)

	// ── Payments ───────────────────────────────────────────────────
	r.POST("/payments", handlers.RecordPayment)
	r.GET("/payments/:email", handlers.PaymentsByUser)
	r.POST("/create-payment-intent", handlers.CreatePaymentIntent)

	// ── Favorites ──────────────────────────────────────────────────
	r.POST("/favorites", handlers.AddFavorite)
	r.GET("/favorites/:email", handlers.ListFavorites)
	r.DELETE("/favorites/:id", handlers.DeleteFavorite)

	// ── Admin ──────────────────────────────────────────────────────
	r.GET("/admin/stats", handlers.GetStats)
}
