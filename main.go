package main

import (
	"errors"
	"log"

	"github.com/mehraj28/Payroll-Mangement/app/config"
	"github.com/mehraj28/Payroll-Mangement/app/database"
	"github.com/mehraj28/Payroll-Mangement/app/models"
	"github.com/mehraj28/Payroll-Mangement/app/routes/admin"
	"github.com/mehraj28/Payroll-Mangement/app/routes/auth"
	"github.com/mehraj28/Payroll-Mangement/app/routes/employee"
	"github.com/mehraj28/Payroll-Mangement/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// errorHandler keeps every error response in the same JSON shape and never
// exposes internal error detail.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

// newApp assembles the fiber application from an explicitly constructed
// store handle and configuration.
func newApp(cfg *config.Config, store *database.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Payroll Management API",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Backend is connected"})
	})

	notifier := services.NewNotifier(cfg.SMTP)
	renderer := services.NewPayslipRenderer(cfg.Company, cfg.LogoPath)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	authHandler := auth.NewHandler(store, tokens)
	auth.SetupAuthRoutes(app, authHandler)
	admin.SetupAdminRoutes(app, admin.NewHandler(store, notifier, renderer), authHandler)
	employee.SetupEmployeeRoutes(app, employee.NewHandler(store, notifier, renderer, cfg.AdminEmail), authHandler)

	return app
}

// seedDemoAdmin creates the demo admin account for evaluation environments.
// It only runs when SEED_DEMO=true.
func seedDemoAdmin(store *database.Store, cfg *config.Config) error {
	if _, err := store.GetUserByEmail(cfg.DemoAdminEmail); err == nil {
		log.Println("Demo admin already exists")
		return nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.DemoAdminPassword)
	if err != nil {
		return err
	}
	if _, err := store.CreateUser(cfg.DemoAdminEmail, hash, "Hiring Manager", models.RoleAdmin); err != nil {
		return err
	}
	log.Println("Demo admin user created")
	return nil
}

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "change-me" {
		log.Println("WARNING: using the default JWT secret; set JWT_SECRET in production")
	}

	store, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()
	log.Println("Database connected successfully")

	if cfg.SeedDemo {
		if err := seedDemoAdmin(store, cfg); err != nil {
			log.Fatalf("Failed to seed demo admin: %v", err)
		}
	}

	app := newApp(cfg, store)
	log.Fatal(app.Listen(":" + cfg.Port))
}
