package routes

import (
	"github.com/Krizzna69/shop-backend/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	ac := &controller.AuthController{DB: db, JWTSecret: jwtSecret}

	api := app.Group("/api")
	a := api.Group("/auth")

	a.Post("/register", ac.Register)
	a.Post("/login", ac.Login)
}
