package handlers

import (
	"net/http"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	MealID        uint    `json:"meal_id" binding:"required"`
	FoodName      string  `json:"food_name"`
	ReviewerName  string  `json:"reviewer_name" binding:"required"`
	ReviewerEmail string  `json:"reviewer_email" binding:"required,email"`
	ReviewerPhoto string  `json:"reviewer_photo"`
	Rating        float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment       string  `json:"comment"`
}

// CreateReview adds a review for a meal
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		MealID:        req.MealID,
		FoodName:      req.FoodName,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		ReviewerPhoto: req.ReviewerPhoto,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added", "review": review})
}

// ListReviews returns all reviews, optionally by reviewer email
func ListReviews(c *gin.Context) {
	var reviews []models.Review
	query := config.DB
	if email := c.Query("email"); email != "" {
		query = query.Where("reviewer_email = ?", email)
	}
	query.Order("created_at desc").Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// ReviewsByMeal returns all reviews for one meal
func ReviewsByMeal(c *gin.Context) {
	var reviews []models.Review
	config.DB.Where("meal_id = ?", c.Param("mealId")).
		Order("created_at desc").
		Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// UpdateReview edits a review's rating or comment
func UpdateReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"rating": true, "comment": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&review).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Review updated", "review": review})
}

// DeleteReview removes a review
func DeleteReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	config.DB.Delete(&review)
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
