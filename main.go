package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"janji/internal/handlers"
	"janji/internal/middleware"
	"janji/internal/models"
	"janji/internal/repositories"
	"janji/internal/services"
	"janji/pkg/events"
)

// devCookieKey protects session cookies in development. Set COOKIE_KEY to a
// base64-encoded 32-byte key in any real deployment.
const devCookieKey = "ZGV2LW9ubHktc2Vzc2lvbi1zZWNyZXQtMzJieXRlcyE="

func main() {
	configure()

	repos, err := newRepositories()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Booking events are optional: without a broker URL the API runs
	// standalone and the services skip publishing.
	var mqClient *events.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = events.NewClient(events.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		go func() {
			log.Println("Starting RabbitMQ consumer for booking events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received booking event (tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeBookingEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	app := newApp(repos, mqClient)

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
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

// configure sets up Viper to read configuration from environment variables
// with development defaults.
func configure() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "janji.db")
	viper.SetDefault("COOKIE_KEY", devCookieKey)
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("ENFORCE_OWNERSHIP", false)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()
}

// repositorySet bundles the three storage backends behind their interfaces
// so newApp does not care which implementation is active.
type repositorySet struct {
	users        repositories.UserRepository
	services     repositories.ServiceRepository
	appointments repositories.AppointmentRepository
}

// newRepositories selects the storage backend from DB_DRIVER: "sqlite"
// (default) or "postgres" via GORM, or "memory" for an ephemeral store.
func newRepositories() (*repositorySet, error) {
	driver := viper.GetString("DB_DRIVER")
	if driver == "memory" {
		return &repositorySet{
			users:        repositories.NewMemoryUserRepository(),
			services:     repositories.NewMemoryServiceRepository(),
			appointments: repositories.NewMemoryAppointmentRepository(),
		}, nil
	}

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(viper.GetString("DB_DSN"))
	case "postgres":
		dialector = postgres.Open(viper.GetString("DB_DSN"))
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// AutoMigrate also subsumes the historical one-shot migration that
	// added paypal_handle to users: an existing column is a no-op.
	if err := db.AutoMigrate(&models.User{}, &models.Service{}, &models.Appointment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &repositorySet{
		users:        repositories.NewGORMUserRepository(db),
		services:     repositories.NewGORMServiceRepository(db),
		appointments: repositories.NewGORMAppointmentRepository(db),
	}, nil
}

// newApp wires services, handlers, middleware and routes into a Fiber app.
func newApp(repos *repositorySet, mqClient *events.Client) *fiber.App {
	enforceOwnership := viper.GetBool("ENFORCE_OWNERSHIP")

	authService := services.NewAuthService(repos.users)
	catalogService := services.NewCatalogService(repos.services, enforceOwnership)
	appointmentService := services.NewAppointmentService(repos.appointments, repos.users, mqClient, enforceOwnership)

	store := session.New(session.Config{
		Expiration:     7 * 24 * time.Hour,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	authHandler := handlers.NewAuthHandler(authService, store)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetString("CORS_ORIGIN"),
		AllowCredentials: true,
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: viper.GetString("COOKIE_KEY"),
	}))
	app.Use(middleware.LoadSession(store, authService))

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	serviceHandler.RegisterRoutes(api)
	appointmentHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
