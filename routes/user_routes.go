package routes

import (
	"github.com/Krizzna69/shop-backend/controller"
	"github.com/Krizzna69/shop-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegisterUserRoutes(app *fiber.App, db *gorm.DB, authMiddleware fiber.Handler) {
	uc := &controller.UserController{DB: db}

	api := app.Group("/api")
	u := api.Group("/users")

	u.Get("/", authMiddleware, middleware.RoleRequired("admin"), uc.List)
	u.Put("/:id/role", authMiddleware, middleware.RoleRequired("admin"), uc.UpdateRole)
}
