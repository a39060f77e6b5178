package handlers

import (
	"net/http"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

// CreateUser stores a user on first sign-in. A second attempt for the same
// email is a no-op that reports the user already exists.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "inserted": false})
		return
	}

	user := models.User{
		Name:   req.Name,
		Email:  req.Email,
		Photo:  req.Photo,
		Role:   models.RoleUser,
		Status: models.StatusActive,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "inserted": true, "user": user})
}

// GetUser fetches a single user by email
func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.Where("email = ?", c.Param("email")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUsers returns all users, optionally filtered by role
func ListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// MarkFraud flags a user account as fraud, blocking future meals and orders
func MarkFraud(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	config.DB.Model(&user).Update("status", models.StatusFraud)
	c.JSON(http.StatusOK, gin.H{
		"message": "User marked as fraud",
		"user_id": user.ID,
		"status":  models.StatusFraud,
	})
}
