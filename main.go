package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasar/internal/apperrors"
	"pasar/internal/config"
	"pasar/internal/handlers"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
	"pasar/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Stock{},
		&models.ProductStock{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional: the app runs without a broker) ---
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, events and emails fall back to logging: %v", err)
		mqClient = nil
	} else {
		defer mqClient.Close()
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	stockRepo := repositories.NewGORMStockRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	seedAdmin(userRepo, cfg)

	// --- Services ---
	mailer := services.NewQueueMailer(mqClient)
	authService := services.NewAuthService(userRepo, mailer, cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(categoryRepo, productRepo)
	stockService := services.NewStockService(stockRepo, nil)
	orderService := services.NewOrderService(orderRepo, mqClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)
	stockHandler := handlers.NewStockHandler(stockService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler,
	})
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	authRequired := middleware.AuthRequired(authService, userRepo)
	adminRequired := middleware.AdminRequired()

	authHandler.RegisterRoutes(apiV1)
	userHandler.RegisterRoutes(apiV1, authRequired, adminRequired)
	categoryHandler.RegisterRoutes(apiV1, authRequired, adminRequired)
	productHandler.RegisterRoutes(apiV1, authRequired, adminRequired)
	stockHandler.RegisterRoutes(apiV1, authRequired, adminRequired)
	orderHandler.RegisterRoutes(apiV1, authRequired, adminRequired)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Queue consumers ---
	if mqClient != nil {
		startConsumers(mqClient)
	}

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// startConsumers attaches the queue workers: a stand-in email sender that
// logs deliveries, and an order event listener.
func startConsumers(mqClient *rabbitmq.Client) {
	err := mqClient.Consume(rabbitmq.QueueVerificationEmails, func(msg amqp.Delivery) error {
		var mail services.VerificationEmail
		if err := json.Unmarshal(msg.Body, &mail); err != nil {
			return err
		}
		// A real deployment would hand this to a mail provider.
		log.Printf("[EMAIL] send verification token %s to %s", mail.Token, mail.Email)
		return nil
	})
	if err != nil {
		log.Printf("Warning: failed to start email consumer: %v", err)
	}

	err = mqClient.Consume(rabbitmq.QueueOrderEvents, func(msg amqp.Delivery) error {
		log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
		return nil
	})
	if err != nil {
		log.Printf("Warning: failed to start order event consumer: %v", err)
	}
}

// seedAdmin creates the bootstrap administrator account when configured and
// absent. Without it no user could ever be promoted to admin.
func seedAdmin(userRepo repositories.UserRepository, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		return
	}
	if _, err := userRepo.GetByEmail(cfg.AdminEmail); err == nil {
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}
	admin := &models.User{
		Email:          cfg.AdminEmail,
		HashedPassword: string(hashed),
		Role:           models.RoleAdmin,
		IsActive:       true,
		IsVerified:     true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", cfg.AdminEmail)
}
