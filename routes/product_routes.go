package routes

import (
	"github.com/Krizzna69/shop-backend/controller"
	"github.com/Krizzna69/shop-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterProductRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, authMiddleware fiber.Handler) {
	pc := &controller.ProductController{DB: db, Redis: rdb}

	api := app.Group("/api")
	p := api.Group("/products")

	p.Get("/", pc.List)
	p.Post("/", authMiddleware, middleware.RoleRequired("admin"), pc.Create)
	p.Get("/:id", pc.Get)
	p.Put("/:id", authMiddleware, middleware.RoleRequired("admin"), pc.Update)
	p.Delete("/:id", authMiddleware, middleware.RoleRequired("admin"), pc.Delete)
}
