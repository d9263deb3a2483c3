package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/Krizzna69/shop-backend/kafka"
	"github.com/Krizzna69/shop-backend/model"
	"github.com/Krizzna69/shop-backend/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CartController struct {
	DB     *gorm.DB
	Events *kafka.Producer
}

type AddCartItemRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type cartItemView struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

type cartView struct {
	ID        uint           `json:"id"`
	User      uint           `json:"user"`
	Items     []cartItemView `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type cartUpdatedEvent struct {
	CartID  uint   `json:"cart_id"`
	UserID  uint   `json:"user_id"`
	Action  string `json:"action"`
	Product uint   `json:"product,omitempty"`
}

// findOrCreate returns the caller's cart, creating an empty one on
// first use. One cart per user.
func (cc *CartController) findOrCreate(userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := cc.DB.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = model.Cart{
			UserID:    userID,
			Items:     datatypes.JSON("[]"),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := cc.DB.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func decodeItems(cart *model.Cart) ([]model.CartItem, error) {
	items := []model.CartItem{}
	if len(cart.Items) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(cart.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (cc *CartController) saveItems(cart *model.Cart, items []model.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	cart.Items = datatypes.JSON(b)
	cart.UpdatedAt = time.Now()
	return cc.DB.Save(cart).Error
}

// Get returns the caller's cart with each line item joined to its
// product record. Items whose product has since been deleted are
// dropped from the response.
func (cc *CartController) Get(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	cart, err := cc.findOrCreate(userID)
	if err != nil {
		log.Println("fetch cart:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching cart"})
	}

	items, err := decodeItems(cart)
	if err != nil {
		log.Println("decode cart items:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching cart"})
	}

	view := cartView{
		ID:        cart.ID,
		User:      cart.UserID,
		Items:     []cartItemView{},
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}

	if len(items) > 0 {
		ids := make([]uint, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.Product)
		}

		products := []model.Product{}
		if err := cc.DB.Where("id IN ?", ids).Find(&products).Error; err != nil {
			log.Println("fetch cart products:", err)
			return c.Status(500).JSON(fiber.Map{"error": "server error fetching cart"})
		}

		byID := make(map[uint]model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
		for _, it := range items {
			if p, ok := byID[it.Product]; ok {
				view.Items = append(view.Items, cartItemView{Product: p, Quantity: it.Quantity})
			}
		}
	}

	return c.JSON(view)
}

// AddItem merges the product into the cart, summing quantities when
// the product is already present.
func (cc *CartController) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	var product model.Product
	if err := cc.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		log.Println("fetch product:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	cart, err := cc.findOrCreate(userID)
	if err != nil {
		log.Println("fetch cart:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	items, err := decodeItems(cart)
	if err != nil {
		log.Println("decode cart items:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	found := false
	for i := range items {
		if items[i].Product == req.ProductID {
			items[i].Quantity += req.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{Product: req.ProductID, Quantity: req.Quantity})
	}

	if err := cc.saveItems(cart, items); err != nil {
		log.Println("save cart:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	cc.Events.PublishCartUpdated(cartUpdatedEvent{CartID: cart.ID, UserID: userID, Action: "add", Product: req.ProductID})
	return c.JSON(cart)
}

func (cc *CartController) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid product id"})
	}

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	cart, items, status, msg := cc.loadItems(userID)
	if status != 0 {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	found := false
	for i := range items {
		if items[i].Product == uint(productID) {
			items[i].Quantity = req.Quantity
			found = true
			break
		}
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "item not in cart"})
	}

	if err := cc.saveItems(cart, items); err != nil {
		log.Println("save cart:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	cc.Events.PublishCartUpdated(cartUpdatedEvent{CartID: cart.ID, UserID: userID, Action: "update", Product: uint(productID)})
	return c.JSON(cart)
}

func (cc *CartController) RemoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid product id"})
	}

	cart, items, status, msg := cc.loadItems(userID)
	if status != 0 {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	kept := items[:0]
	found := false
	for _, it := range items {
		if it.Product == uint(productID) {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "item not in cart"})
	}

	if err := cc.saveItems(cart, kept); err != nil {
		log.Println("save cart:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	cc.Events.PublishCartUpdated(cartUpdatedEvent{CartID: cart.ID, UserID: userID, Action: "remove", Product: uint(productID)})
	return c.JSON(cart)
}

func (cc *CartController) Clear(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	cart, err := cc.findOrCreate(userID)
	if err != nil {
		log.Println("fetch cart:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	if err := cc.saveItems(cart, []model.CartItem{}); err != nil {
		log.Println("save cart:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating cart"})
	}

	cc.Events.PublishCartUpdated(cartUpdatedEvent{CartID: cart.ID, UserID: userID, Action: "clear"})
	return c.JSON(cart)
}

func (cc *CartController) loadItems(userID uint) (*model.Cart, []model.CartItem, int, string) {
	var cart model.Cart
	if err := cc.DB.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 404, "item not in cart"
		}
		log.Println("fetch cart:", err)
		return nil, nil, 500, "server error updating cart"
	}

	items, err := decodeItems(&cart)
	if err != nil {
		log.Println("decode cart items:", err)
		return nil, nil, 500, "server error updating cart"
	}
	return &cart, items, 0, ""
}
