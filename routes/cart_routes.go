package routes

import (
	"github.com/Krizzna69/shop-backend/controller"
	"github.com/Krizzna69/shop-backend/kafka"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegisterCartRoutes(app *fiber.App, db *gorm.DB, events *kafka.Producer, authMiddleware fiber.Handler) {
	cc := &controller.CartController{DB: db, Events: events}

	api := app.Group("/api")
	cart := api.Group("/cart")

	cart.Get("/", authMiddleware, cc.Get)
	cart.Post("/", authMiddleware, cc.AddItem)
	cart.Put("/:productId", authMiddleware, cc.UpdateItem)
	cart.Delete("/:productId", authMiddleware, cc.RemoveItem)
	cart.Delete("/", authMiddleware, cc.Clear)
}
