package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/middleware"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"
	"github.com/sakibmorshed/assignment-11-new-serverside/policy"

	"github.com/gin-gonic/gin"
)

const mealsPageSize = 10

type CreateMealRequest struct {
	FoodName     string  `json:"food_name" binding:"required"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Ingredients  string  `json:"ingredients"`
	Category     string  `json:"category"`
	DeliveryArea string  `json:"delivery_area"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Rating       float64 `json:"rating"`
}

// CreateMeal lists a new meal. Only a chef whose account is not flagged
// fraud may create one; the meal is stamped with the chef's email, name and
// chef id as they are at creation time.
func CreateMeal(c *gin.Context) {
	email := middleware.GetEmail(c)

	chef, err := policy.Authorize(config.DB, email, models.RoleChef, models.StatusFraud)
	if err != nil {
		if errors.Is(err, policy.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := models.Meal{
		FoodName:     req.FoodName,
		Description:  req.Description,
		Image:        req.Image,
		Ingredients:  req.Ingredients,
		Category:     req.Category,
		DeliveryArea: req.DeliveryArea,
		Price:        req.Price,
		Rating:       req.Rating,
		ChefEmail:    chef.Email,
		ChefName:     chef.Name,
		ChefID:       chef.ChefID,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal created", "meal": meal})
}

// ListMeals returns a filtered, sorted page of meals. Filters compose
// conjunctively: substring search on food or chef name, minimum rating and a
// three-tier price bracket. Pages are fixed at 10 meals.
func ListMeals(c *gin.Context) {
	query := config.DB.Model(&models.Meal{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(food_name) LIKE ? OR LOWER(chef_name) LIKE ?", pattern, pattern)
	}
	if rating := c.Query("rating"); rating != "" {
		if minRating, err := strconv.ParseFloat(rating, 64); err == nil {
			query = query.Where("rating >= ?", minRating)
		}
	}
	switch c.Query("price") {
	case "low":
		query = query.Where("price < ?", 20.0)
	case "medium":
		query = query.Where("price >= ? AND price <= ?", 20.0, 50.0)
	case "high":
		query = query.Where("price > ?", 50.0)
	}

	var total int64
	query.Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(mealsPageSize)))

	switch c.Query("sort") {
	case "price_asc":
		query = query.Order("price asc")
	case "price_desc":
		query = query.Order("price desc")
	case "rating_desc":
		query = query.Order("rating desc")
	default:
		query = query.Order("created_at desc")
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	var meals []models.Meal
	query.Offset((page - 1) * mealsPageSize).Limit(mealsPageSize).Find(&meals)

	c.JSON(http.StatusOK, gin.H{
		"count":       total,
		"page":        page,
		"total_pages": totalPages,
		"meals":       meals,
	})
}

// MealsByChef returns a chef's own listings. Callers may only fetch their
// own: the token's subject email must match the requested email.
func MealsByChef(c *gin.Context) {
	email := c.Param("email")
	if middleware.GetEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	var meals []models.Meal
	config.DB.Where("chef_email = ?", email).Order("created_at desc").Find(&meals)
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// GetMeal returns a single meal
func GetMeal(c *gin.Context) {
	var meal models.Meal
	if err := config.DB.First(&meal, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// UpdateMeal updates a meal's listing fields
func UpdateMeal(c *gin.Context) {
	var meal models.Meal
	if err := config.DB.First(&meal, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow listing fields; chef stamp stays as created
	allowed := map[string]bool{
		"food_name": true, "description": true, "image": true, "ingredients": true,
		"category": true, "delivery_area": true, "price": true, "rating": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&meal).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated", "meal": meal})
}

// DeleteMeal removes a meal
func DeleteMeal(c *gin.Context) {
	var meal models.Meal
	if err := config.DB.First(&meal, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	config.DB.Delete(&meal)
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}
