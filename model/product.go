package model

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	ImageURL      string    `json:"imageUrl"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedBy     uint      `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}
