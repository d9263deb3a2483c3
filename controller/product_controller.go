package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/Krizzna69/shop-backend/model"
	"github.com/Krizzna69/shop-backend/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	productCacheKey = "products:all"
	productCacheTTL = 5 * time.Minute
)

type ProductController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (pc *ProductController) List(c *fiber.Ctx) error {
	if pc.Redis != nil {
		if cached, err := pc.Redis.Get(c.Context(), productCacheKey).Result(); err == nil {
			var products []model.Product
			if json.Unmarshal([]byte(cached), &products) == nil {
				return c.JSON(products)
			}
		}
	}

	products := []model.Product{}
	if err := pc.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		log.Println("fetch products:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching products"})
	}

	if pc.Redis != nil {
		if b, err := json.Marshal(products); err == nil {
			pc.Redis.Set(c.Context(), productCacheKey, b, productCacheTTL)
		}
	}
	return c.JSON(products)
}

func (pc *ProductController) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var product model.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		log.Println("fetch product:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching product"})
	}
	return c.JSON(product)
}

type ProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"required"`
	ImageURL      string  `json:"imageUrl"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
}

func (pc *ProductController) Create(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	product := model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		CreatedBy:     c.Locals("user_id").(uint),
		CreatedAt:     time.Now(),
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		log.Println("create product:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error creating product"})
	}

	pc.invalidateCache(c)
	return c.Status(201).JSON(product)
}

func (pc *ProductController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var product model.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		log.Println("fetch product:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating product"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	// full-field overwrite, taken verbatim from the body
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.Category = req.Category
	product.StockQuantity = req.StockQuantity

	if err := pc.DB.Save(&product).Error; err != nil {
		log.Println("update product:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating product"})
	}

	pc.invalidateCache(c)
	return c.JSON(product)
}

func (pc *ProductController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var product model.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		log.Println("fetch product:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error deleting product"})
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		log.Println("delete product:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error deleting product"})
	}

	pc.invalidateCache(c)
	return c.JSON(fiber.Map{"message": "product deleted successfully"})
}

func (pc *ProductController) invalidateCache(c *fiber.Ctx) {
	if pc.Redis != nil {
		pc.Redis.Del(c.Context(), productCacheKey)
	}
}
