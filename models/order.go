package models

import "time"

// PaymentStatus moves pending → paid exactly once
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Fulfillment statuses referenced by the lifecycle. OrderStatus is stored as a
// plain string: clients may set intermediate states beyond these values.
const (
	OrderPending   = "pending"
	OrderAccepted  = "accepted"
	OrderDelivered = "delivered"
)

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserEmail     string        `json:"user_email" gorm:"not null;index"`
	UserName      string        `json:"user_name"`
	ChefID        string        `json:"chef_id" gorm:"index"`
	MealID        uint          `json:"meal_id"`
	FoodName      string        `json:"food_name"`
	Price         float64       `json:"price"`
	Quantity      int           `json:"quantity" gorm:"default:1"`
	Address       string        `json:"address"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	OrderStatus   string        `json:"order_status" gorm:"not null;default:'pending'"`
	PaidAt        *time.Time    `json:"paid_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
