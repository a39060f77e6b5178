package handlers

import (
	"net/http"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/gin-gonic/gin"
)

// GetStats returns aggregate marketplace counts and revenue
func GetStats(c *gin.Context) {
	var users, chefs, meals, orders, delivered, payments int64
	var revenue float64

	config.DB.Model(&models.User{}).Count(&users)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleChef).Count(&chefs)
	config.DB.Model(&models.Meal{}).Count(&meals)
	config.DB.Model(&models.Order{}).Count(&orders)
	config.DB.Model(&models.Order{}).Where("order_status = ?", models.OrderDelivered).Count(&delivered)
	config.DB.Model(&models.Payment{}).Count(&payments)
	config.DB.Model(&models.Payment{}).Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	c.JSON(http.StatusOK, gin.H{
		"users":            users,
		"chefs":            chefs,
		"meals":            meals,
		"orders":           orders,
		"delivered_orders": delivered,
		"payments":         payments,
		"total_revenue":    revenue,
	})
}
