package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Krizzna69/shop-backend/cache"
	"github.com/Krizzna69/shop-backend/kafka"
	"github.com/Krizzna69/shop-backend/middleware"
	"github.com/Krizzna69/shop-backend/model"
	"github.com/Krizzna69/shop-backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func initDB() {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASS", "postgres")
	name := getEnv("DB_NAME", "shopdb")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", host, user, pass, name, port)
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect db:", err)
	}
	if err := DB.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}, &model.Cart{}); err != nil {
		log.Fatal(err)
	}
}

func main() {
	godotenv.Load()
	initDB()
	jwtSecret := getEnv("JWT_SECRET", "secret")

	// redis and kafka are optional: the service runs without them
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = cache.ConnectRedis(addr)
	}

	var events *kafka.Producer
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		events = kafka.NewProducer(broker)
	}

	app := fiber.New()
	app.Use(logger.New())

	authMiddleware := middleware.AuthRequired(jwtSecret)

	routes.RegisterAuthRoutes(app, DB, jwtSecret)
	routes.RegisterUserRoutes(app, DB, authMiddleware)
	routes.RegisterProductRoutes(app, DB, rdb, authMiddleware)
	routes.RegisterOrderRoutes(app, DB, events, authMiddleware)
	routes.RegisterCartRoutes(app, DB, events, authMiddleware)

	log.Fatal(app.Listen(":" + getEnv("PORT", "3000")))
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
