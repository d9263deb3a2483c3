package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type OrderItem struct {
	Product  uint `json:"product"`
	Quantity int  `json:"quantity"`
}

// Custom type to handle []OrderItem as JSON in DB
type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *OrderItemList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for OrderItemList")
}

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          uint          `json:"user"`
	UserInfo        *User         `gorm:"foreignKey:UserID" json:"userInfo,omitempty"`
	Products        OrderItemList `gorm:"type:jsonb" json:"products"`
	ShippingAddress string        `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          string        `gorm:"default:pending" json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}
