package models

import "time"

type Review struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	MealID        uint      `json:"meal_id" gorm:"index"`
	FoodName      string    `json:"food_name"`
	ReviewerName  string    `json:"reviewer_name"`
	ReviewerEmail string    `json:"reviewer_email"`
	ReviewerPhoto string    `json:"reviewer_photo"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Favorite marks a meal saved by a user; the same (user, meal) pair is
// never stored twice.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"user_email" gorm:"index:idx_fav_user_meal"`
	MealID    uint      `json:"meal_id" gorm:"index:idx_fav_user_meal"`
	FoodName  string    `json:"food_name"`
	ChefName  string    `json:"chef_name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Payment records a completed charge against an order
type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TransactionID string    `json:"transaction_id" gorm:"uniqueIndex"`
	UserEmail     string    `json:"user_email" gorm:"index"`
	OrderID       uint      `json:"order_id"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
