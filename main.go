package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/config"
	"github.com/axrasp/start-burger/models"
	"github.com/axrasp/start-burger/router"
	"github.com/axrasp/start-burger/services"
	"github.com/axrasp/start-burger/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	geocoder := services.NewGeocoder(
		os.Getenv("YANDEX_API_KEY"),
		os.Getenv("GEOCODER_BASE_URL"),
	)
	places := services.NewPlaceService(db, geocoder, config.InitRedis())
	menu := services.NewMenuIndex(db)
	matcher := services.NewMatcherService(db, menu, places)

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}
	topic := os.Getenv("KAFKA_ORDER_TOPIC")
	if topic == "" {
		topic = "order-events"
	}
	events := services.NewOrderEventPublisher(brokers, topic)
	defer events.Close()

	r := router.SetupRouter(db, matcher, menu, events)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Restaurant{},
		&models.RestaurantMenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Place{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
