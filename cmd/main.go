package main

import (
	"errors"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/solobooks/solobooks/config"
	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/internal/db"
	"github.com/solobooks/solobooks/internal/db/repos"
	"github.com/solobooks/solobooks/internal/logger"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
	"github.com/solobooks/solobooks/pkg/api/v1/routes"
)

func main() {
	// .env is optional, env vars may come from the environment directly
	_ = godotenv.Load()

	logger.InitializeAndConfigure()

	dbPort, err := strconv.Atoi(config.GetEnv("DB_PORT", "5432"))
	if err != nil {
		logger.Fatalf("invalid DB_PORT: %v", err)
	}
	database, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     dbPort,
	})
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	// Create repositories
	userRepo := repos.NewUserRepository(database)
	clientRepo := repos.NewClientRepository(database)
	projectRepo := repos.NewProjectRepository(database)
	taskRepo := repos.NewTaskRepository(database)
	timeEntryRepo := repos.NewTimeEntryRepository(database)
	invoiceRepo := repos.NewInvoiceRepository(database)
	expenseRepo := repos.NewExpenseRepository(database)

	// Create services
	userService := services.NewUserService(userRepo)
	clientService := services.NewClientService(clientRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, timeEntryRepo, projectService)
	invoiceService := services.NewInvoiceService(database, invoiceRepo, taskRepo, projectRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	dashboardService := services.NewDashboardService(database)

	// Create handlers
	clientHandler := handlers.NewClientHandler(clientService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, projectService, clientService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})
	app.Use(middleware.Logger())

	routes.RegisterRoutes(
		app,
		clientHandler,
		projectHandler,
		taskHandler,
		invoiceHandler,
		expenseHandler,
		userHandler,
		dashboardHandler,
	)

	port := config.GetEnv("PORT", routes.DefaultPort)
	logger.Infof("listening on :%s", port)
	logger.Fatal(app.Listen(":" + port))
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
