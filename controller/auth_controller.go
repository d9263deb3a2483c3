package controller

import (
	"errors"
	"log"
	"time"

	"github.com/Krizzna69/shop-backend/model"
	"github.com/Krizzna69/shop-backend/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	var existing model.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(400).JSON(fiber.Map{"error": "email already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("register lookup:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error creating user"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("hash password:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error creating user"})
	}

	user := model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      "user",
		CreatedAt: time.Now(),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		log.Println("create user:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error creating user"})
	}

	return c.Status(201).JSON(user)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	var user model.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ac.JWTSecret))
	if err != nil {
		log.Println("sign token:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error signing token"})
	}

	return c.JSON(fiber.Map{"access_token": signed})
}
