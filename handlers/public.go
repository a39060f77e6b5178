package handlers

import (
	"net/http"

	"github.com/sakibmorshed/assignment-11-new-serverside/middleware"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"
	"github.com/sakibmorshed/assignment-11-new-serverside/policy"

	"github.com/gin-gonic/gin"
)

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken signs a bearer token for a verified client email
func IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := middleware.GenerateToken(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetOrderLifecycle returns the advisory order flow for informational purposes
func GetOrderLifecycle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"flow":             policy.AdvisoryFlow(),
		"payment_statuses": []models.PaymentStatus{models.PaymentPending, models.PaymentPaid},
		"description":      "Typical order lifecycle; fulfillment statuses are not enforced",
	})
}
