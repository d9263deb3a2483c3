package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/Krizzna69/shop-backend/model"
	"github.com/Krizzna69/shop-backend/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func (uc *UserController) List(c *fiber.Ctx) error {
	users := []model.User{}
	if err := uc.DB.Select("id", "name", "email", "role", "created_at").Find(&users).Error; err != nil {
		log.Println("fetch users:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error fetching users"})
	}
	return c.JSON(users)
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	var user model.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "user not found"})
		}
		log.Println("fetch user:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating role"})
	}

	user.Role = req.Role
	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("update role:", err)
		return c.Status(500).JSON(fiber.Map{"error": "server error updating role"})
	}

	return c.JSON(user)
}
