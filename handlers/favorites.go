package handlers

import (
	"net/http"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/gin-gonic/gin"
)

type AddFavoriteRequest struct {
	UserEmail string  `json:"user_email" binding:"required,email"`
	MealID    uint    `json:"meal_id" binding:"required"`
	FoodName  string  `json:"food_name"`
	ChefName  string  `json:"chef_name"`
	Price     float64 `json:"price"`
}

// AddFavorite saves a meal for a user. The same (user, meal) pair is never
// stored twice; a duplicate is reported, not created.
func AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Favorite
	result := config.DB.Where("user_email = ? AND meal_id = ?", req.UserEmail, req.MealID).First(&existing)
	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"message": "already added", "inserted": false})
		return
	}

	favorite := models.Favorite{
		UserEmail: req.UserEmail,
		MealID:    req.MealID,
		FoodName:  req.FoodName,
		ChefName:  req.ChefName,
		Price:     req.Price,
	}
	if err := config.DB.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Favorite added", "inserted": true, "favorite": favorite})
}

// ListFavorites returns a user's saved meals
func ListFavorites(c *gin.Context) {
	var favorites []models.Favorite
	config.DB.Where("user_email = ?", c.Param("email")).
		Order("created_at desc").
		Find(&favorites)
	c.JSON(http.StatusOK, gin.H{"count": len(favorites), "favorites": favorites})
}

// DeleteFavorite removes a saved meal
func DeleteFavorite(c *gin.Context) {
	var favorite models.Favorite
	if err := config.DB.First(&favorite, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	config.DB.Delete(&favorite)
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}
