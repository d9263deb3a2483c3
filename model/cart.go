package model

import (
	"time"

	"gorm.io/datatypes"
)

type CartItem struct {
	Product  uint `json:"product"`
	Quantity int  `json:"quantity"`
}

type Cart struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index" json:"user"`
	Items     datatypes.JSON `gorm:"type:jsonb" json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
