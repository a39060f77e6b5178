package models

import "time"

// Meal is a listing owned by a chef. Chef fields are snapshotted from the
// owning User at creation time and never re-synced.
type Meal struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FoodName     string    `json:"food_name" gorm:"not null"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Ingredients  string    `json:"ingredients"`
	Category     string    `json:"category"`
	DeliveryArea string    `json:"delivery_area"`
	Price        float64   `json:"price" gorm:"not null"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	ChefEmail    string    `json:"chef_email" gorm:"index"`
	ChefName     string    `json:"chef_name"`
	ChefID       string    `json:"chef_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
