package handlers

import (
	"math"
	"net/http"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"
	"github.com/sakibmorshed/assignment-11-new-serverside/payments"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IntentProvider creates payment intents at the external provider. Tests
// swap in a local provider.
var IntentProvider payments.IntentCreator = defaultIntentProvider()

func defaultIntentProvider() payments.IntentCreator {
	if config.PaymentSecretKey != "" {
		return payments.NewStripeProvider(config.PaymentSecretKey)
	}
	return payments.NewLocalProvider()
}

type RecordPaymentRequest struct {
	UserEmail     string  `json:"user_email" binding:"required,email"`
	OrderID       uint    `json:"order_id"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transaction_id"`
}

// RecordPayment stores a completed charge
func RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	payment := models.Payment{
		TransactionID: transactionID,
		UserEmail:     req.UserEmail,
		OrderID:       req.OrderID,
		Amount:        req.Amount,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded", "payment": payment})
}

// PaymentsByUser returns a user's payment history
func PaymentsByUser(c *gin.Context) {
	var history []models.Payment
	config.DB.Where("user_email = ?", c.Param("email")).
		Order("created_at desc").
		Find(&history)
	c.JSON(http.StatusOK, gin.H{"count": len(history), "payments": history})
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent asks the payment provider for an intent covering the
// given price and returns its client secret
func CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amountCents := int64(math.Round(req.Price * 100))
	intent, err := IntentProvider.CreateIntent(c.Request.Context(), amountCents)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_secret": intent.ClientSecret})
}
