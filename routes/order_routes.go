package routes

import (
	"github.com/Krizzna69/shop-backend/controller"
	"github.com/Krizzna69/shop-backend/kafka"
	"github.com/Krizzna69/shop-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegisterOrderRoutes(app *fiber.App, db *gorm.DB, events *kafka.Producer, authMiddleware fiber.Handler) {
	oc := &controller.OrderController{DB: db, Events: events}

	api := app.Group("/api")
	o := api.Group("/orders")

	o.Post("/", authMiddleware, oc.Create)
	o.Get("/admin", authMiddleware, middleware.RoleRequired("admin"), oc.ListAll)
	o.Get("/my-orders", authMiddleware, oc.ListMine)
	o.Get("/:id", authMiddleware, oc.Get)
	o.Put("/:id", authMiddleware, middleware.RoleRequired("admin"), oc.UpdateStatus)
}
