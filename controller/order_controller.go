package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/Krizzna69/shop-backend/kafka"
	"github.com/Krizzna69/shop-backend/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB     *gorm.DB
	Events *kafka.Producer
}

type CreateOrderRequest struct {
	Products        model.OrderItemList `json:"products"`
	ShippingAddress string              `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	TotalAmount     float64             `json:"totalAmount"`
}

type orderCreatedEvent struct {
	OrderID     uint    `json:"order_id"`
	UserID      uint    `json:"user_id"`
	TotalAmount float64 `json:"total_amount"`
}

type orderStatusEvent struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

func (oc *OrderController) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(req.Products) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "no products in order"})
	}

	order := model.Order{
		UserID:          userID,
		Products:        req.Products,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     req.TotalAmount,
		Status:          "pending",
		CreatedAt:       time.Now(),
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		log.Println("create order:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error creating order"})
	}

	oc.Events.PublishOrderCreated(orderCreatedEvent{
		OrderID:     order.ID,
		UserID:      userID,
		TotalAmount: order.TotalAmount,
	})
	return c.Status(201).JSON(order)
}

// ListAll returns every order, newest first, with the owning user's
// name and email attached. Admin only.
func (oc *OrderController) ListAll(c *fiber.Ctx) error {
	orders := []model.Order{}
	if err := oc.DB.Preload("UserInfo").Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Println("fetch orders:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching orders"})
	}
	return c.JSON(orders)
}

func (oc *OrderController) ListMine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	orders := []model.Order{}
	if err := oc.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Println("fetch orders:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching orders"})
	}
	return c.JSON(orders)
}

func (oc *OrderController) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	userID := c.Locals("user_id").(uint)
	role, _ := c.Locals("user_role").(string)

	var order model.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "order not found"})
		}
		log.Println("fetch order:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching order"})
	}

	if role != "admin" && order.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "not authorized to access this order"})
	}
	return c.JSON(order)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus overwrites the status verbatim; there is no state
// machine constraining transitions. Admin only.
func (oc *OrderController) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	var order model.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "order not found"})
		}
		log.Println("fetch order:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating order"})
	}

	order.Status = req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		log.Println("update order:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating order"})
	}

	oc.Events.PublishOrderStatusUpdated(orderStatusEvent{OrderID: order.ID, Status: order.Status})
	return c.JSON(order)
}
