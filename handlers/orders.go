package handlers

import (
	"net/http"
	"time"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"
	"github.com/sakibmorshed/assignment-11-new-serverside/policy"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	UserEmail string  `json:"user_email" binding:"required,email"`
	UserName  string  `json:"user_name"`
	ChefID    string  `json:"chef_id" binding:"required"`
	MealID    uint    `json:"meal_id" binding:"required"`
	FoodName  string  `json:"food_name"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity"`
	Address   string  `json:"address"`
}

// CreateOrder places a new order. An order for a fraud-flagged account is
// blocked and nothing is stored. Orders start with payment and fulfillment
// both pending.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.UserEmail).First(&user).Error; err == nil {
		if user.Status == models.StatusFraud {
			c.JSON(http.StatusForbidden, gin.H{"message": "fraud account cannot place orders"})
			return
		}
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	order := models.Order{
		UserEmail:     req.UserEmail,
		UserName:      req.UserName,
		ChefID:        req.ChefID,
		MealID:        req.MealID,
		FoodName:      req.FoodName,
		Price:         req.Price,
		Quantity:      quantity,
		Address:       req.Address,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
}

// OrdersByUser returns all orders placed by an email, newest first
func OrdersByUser(c *gin.Context) {
	var orders []models.Order
	config.DB.Where("user_email = ?", c.Param("email")).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// OrdersByChef returns all orders directed at a chef id, newest first
func OrdersByChef(c *gin.Context) {
	var orders []models.Order
	config.DB.Where("chef_id = ?", c.Param("chefId")).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}

// UpdateOrderStatus overwrites an order's fulfillment status. Any status may
// follow any other; the flow on the lifecycle docs route is advisory only.
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prevStatus := order.OrderStatus
	config.DB.Model(&order).Update("order_status", req.OrderStatus)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.OrderStatus,
	})
}

// MarkOrderPaid confirms payment on an order: payment status becomes paid,
// fulfillment moves to accepted and the paid timestamp is set, regardless of
// the order's prior fulfillment status.
func MarkOrderPaid(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	policy.ApplyPayment(&order, time.Now())
	config.DB.Model(&order).Updates(map[string]interface{}{
		"payment_status": order.PaymentStatus,
		"order_status":   order.OrderStatus,
		"paid_at":        order.PaidAt,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order marked as paid",
		"order_id":       order.ID,
		"payment_status": order.PaymentStatus,
		"order_status":   order.OrderStatus,
	})
}

// GetOrder returns a single order
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
