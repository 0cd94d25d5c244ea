// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
)

/*

To keep this file organized, routes should be organized in the following way:

1. Smallest scope first (i.e. task routes before invoice routes)
2. For similar scopes, put the endpoints in alphabetical order
3. Order routes in GET, POST, PUT, DELETE order.
	a. Within this ordering, param urls (ie /:id) should go last, otherwise fiber will interpret the route slug as that param.
	b. After param considerations, order alphabetically.
4. For clarity, naming should match the action (i.e. GetInvoice, DeleteInvoice)

*/

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Client routes
	GetClients   = "GetClients"
	GetClient    = "GetClient"
	CreateClient = "CreateClient"
	DeleteClient = "DeleteClient"

	// Project routes
	GetProjects   = "GetProjects"
	GetProject    = "GetProject"
	CreateProject = "CreateProject"
	UpdateProject = "UpdateProject"
	DeleteProject = "DeleteProject"

	// Task routes (nested under projects for creation and listing)
	GetProjectTasks = "GetProjectTasks"
	CreateTask      = "CreateTask"
	UpdateTask      = "UpdateTask"
	ToggleTask      = "ToggleTask"
	DeleteTask      = "DeleteTask"
	LogTime         = "LogTime"
	QuickLogTime    = "QuickLogTime"
	DeleteTimeEntry = "DeleteTimeEntry"

	// Invoice routes
	GetInvoices        = "GetInvoices"
	GetInvoice         = "GetInvoice"
	DownloadInvoicePDF = "DownloadInvoicePDF"
	GenerateInvoice    = "GenerateInvoice"
	CreateInvoice      = "CreateInvoice"
	AddLineItem        = "AddLineItem"
	UpdateInvoice      = "UpdateInvoice"
	DeleteInvoice      = "DeleteInvoice"

	// Expense routes
	GetExpenses          = "GetExpenses"
	GetExpenseCategories = "GetExpenseCategories"
	CreateExpense        = "CreateExpense"
	DeleteExpense        = "DeleteExpense"

	// User routes
	GetUsers    = "GetUsers"
	GetUserByID = "GetUserByID"
	CreateUser  = "CreateUser"
	DeleteUser  = "DeleteUser"

	// Dashboard route
	GetDashboard = "GetDashboard"
)

// RegisterRoutes configures all the v1 routes
//
// NOTE: route ordering is important because routes will try and match in the order they are registered.
// For example, the expense /categories route must be registered before /:id or the slug gets interpreted as an expense ID.
func RegisterRoutes(
	app *fiber.App,
	clientHandler *handlers.ClientHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	invoiceHandler *handlers.InvoiceHandler,
	expenseHandler *handlers.ExpenseHandler,
	userHandler *handlers.UserHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// API v1 routes, owner-scoped
	v1 := app.Group(APIv1Prefix, middleware.RequireOwner())

	// Client endpoints
	clients := v1.Group("/clients")
	clients.Get("/", clientHandler.ListClients).Name(GetClients)
	clients.Get("/:id", clientHandler.GetClient).Name(GetClient)
	clients.Post("/", clientHandler.CreateClient).Name(CreateClient)
	clients.Delete("/:id", clientHandler.DeleteClient).Name(DeleteClient)

	// Project endpoints
	projects := v1.Group("/projects")
	projects.Get("/", projectHandler.ListProjects).Name(GetProjects)
	projects.Get("/:id", projectHandler.GetProject).Name(GetProject)
	projects.Get("/:id/tasks", taskHandler.ListTasks).Name(GetProjectTasks)
	projects.Post("/", projectHandler.CreateProject).Name(CreateProject)
	projects.Post("/:id/tasks", taskHandler.CreateTask).Name(CreateTask)
	projects.Post("/:id/invoices", invoiceHandler.CreateInvoice).Name(CreateInvoice)
	projects.Post("/:id/invoices/generate", invoiceHandler.GenerateInvoice).Name(GenerateInvoice)
	projects.Put("/:id", projectHandler.UpdateProject).Name(UpdateProject)
	projects.Delete("/:id", projectHandler.DeleteProject).Name(DeleteProject)

	// Task endpoints
	tasks := v1.Group("/tasks")
	tasks.Post("/:id/time", taskHandler.LogTime).Name(LogTime)
	tasks.Post("/:id/time/quick", taskHandler.QuickLogTime).Name(QuickLogTime)
	tasks.Put("/:id", taskHandler.UpdateTask).Name(UpdateTask)
	tasks.Put("/:id/toggle", taskHandler.ToggleTask).Name(ToggleTask)
	tasks.Delete("/:id", taskHandler.DeleteTask).Name(DeleteTask)

	// Time entry endpoints
	v1.Delete("/time-entries/:id", taskHandler.DeleteTimeEntry).Name(DeleteTimeEntry)

	// Invoice endpoints
	invoices := v1.Group("/invoices")
	invoices.Get("/", invoiceHandler.ListInvoices).Name(GetInvoices)
	invoices.Get("/:id", invoiceHandler.GetInvoice).Name(GetInvoice)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadInvoicePDF).Name(DownloadInvoicePDF)
	invoices.Post("/:id/line-items", invoiceHandler.AddLineItem).Name(AddLineItem)
	invoices.Put("/:id", invoiceHandler.UpdateInvoice).Name(UpdateInvoice)
	invoices.Delete("/:id", invoiceHandler.DeleteInvoice).Name(DeleteInvoice)

	// Expense endpoints
	expenses := v1.Group("/expenses")
	expenses.Get("/", expenseHandler.ListExpenses).Name(GetExpenses)
	expenses.Get("/categories", expenseHandler.ListExpenseCategories).Name(GetExpenseCategories)
	expenses.Post("/", expenseHandler.CreateExpense).Name(CreateExpense)
	expenses.Delete("/:id", expenseHandler.DeleteExpense).Name(DeleteExpense)

	// User endpoints
	users := v1.Group("/users")
	users.Get("/", userHandler.ListUsers).Name(GetUsers)
	users.Get("/:id", userHandler.GetUser).Name(GetUserByID)
	users.Post("/", userHandler.CreateUser).Name(CreateUser)
	users.Delete("/:id", userHandler.DeleteUser).Name(DeleteUser)

	// Dashboard endpoint
	v1.Get("/dashboard", dashboardHandler.GetSummary).Name(GetDashboard)
}

// withQuery appends encoded query parameters to a path
func withQuery(path string, queryParams url.Values) string {
	if len(queryParams) == 0 {
		return path
	}
	return fmt.Sprintf("%s?%s", path, queryParams.Encode())
}

// Health check route helper

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return "/health"
}

// Client route helpers

// GetClientsURL returns the URL for listing clients
func GetClientsURL(queryParams url.Values) string {
	return withQuery(APIv1Prefix+"/clients", queryParams)
}

// GetClientURL returns the URL for getting a client by ID
func GetClientURL(id string) string {
	return fmt.Sprintf("%s/clients/%s", APIv1Prefix, id)
}

// CreateClientURL returns the URL for creating a client
func CreateClientURL() string {
	return APIv1Prefix + "/clients"
}

// DeleteClientURL returns the URL for deleting a client
func DeleteClientURL(id string) string {
	return fmt.Sprintf("%s/clients/%s", APIv1Prefix, id)
}

// Project route helpers

// GetProjectsURL returns the URL for listing projects
func GetProjectsURL(queryParams url.Values) string {
	return withQuery(APIv1Prefix+"/projects", queryParams)
}

// GetProjectURL returns the URL for getting a project by ID
func GetProjectURL(id string) string {
	return fmt.Sprintf("%s/projects/%s", APIv1Prefix, id)
}

// CreateProjectURL returns the URL for creating a project
func CreateProjectURL() string {
	return APIv1Prefix + "/projects"
}

// UpdateProjectURL returns the URL for updating a project
func UpdateProjectURL(id string) string {
	return fmt.Sprintf("%s/projects/%s", APIv1Prefix, id)
}

// DeleteProjectURL returns the URL for deleting a project
func DeleteProjectURL(id string) string {
	return fmt.Sprintf("%s/projects/%s", APIv1Prefix, id)
}

// Task route helpers

// GetProjectTasksURL returns the URL for listing a project's tasks
func GetProjectTasksURL(projectID string, queryParams url.Values) string {
	return withQuery(fmt.Sprintf("%s/projects/%s/tasks", APIv1Prefix, projectID), queryParams)
}

// CreateTaskURL returns the URL for adding a task to a project
func CreateTaskURL(projectID string) string {
	return fmt.Sprintf("%s/projects/%s/tasks", APIv1Prefix, projectID)
}

// UpdateTaskURL returns the URL for updating a task
func UpdateTaskURL(id string) string {
	return fmt.Sprintf("%s/tasks/%s", APIv1Prefix, id)
}

// ToggleTaskURL returns the URL for toggling a task's completion
func ToggleTaskURL(id string) string {
	return fmt.Sprintf("%s/tasks/%s/toggle", APIv1Prefix, id)
}

// DeleteTaskURL returns the URL for deleting a task
func DeleteTaskURL(id string) string {
	return fmt.Sprintf("%s/tasks/%s", APIv1Prefix, id)
}

// LogTimeURL returns the URL for logging time against a task
func LogTimeURL(taskID string) string {
	return fmt.Sprintf("%s/tasks/%s/time", APIv1Prefix, taskID)
}

// QuickLogTimeURL returns the URL for quick-logging a quarter hour
func QuickLogTimeURL(taskID string) string {
	return fmt.Sprintf("%s/tasks/%s/time/quick", APIv1Prefix, taskID)
}

// DeleteTimeEntryURL returns the URL for deleting a time entry
func DeleteTimeEntryURL(id string) string {
	return fmt.Sprintf("%s/time-entries/%s", APIv1Prefix, id)
}

// Invoice route helpers

// GetInvoicesURL returns the URL for listing invoices
func GetInvoicesURL(queryParams url.Values) string {
	return withQuery(APIv1Prefix+"/invoices", queryParams)
}

// GetInvoiceURL returns the URL for getting an invoice by ID
func GetInvoiceURL(id string) string {
	return fmt.Sprintf("%s/invoices/%s", APIv1Prefix, id)
}

// DownloadInvoicePDFURL returns the URL for downloading an invoice PDF
func DownloadInvoicePDFURL(id string) string {
	return fmt.Sprintf("%s/invoices/%s/pdf", APIv1Prefix, id)
}

// GenerateInvoiceURL returns the URL for generating an invoice from a project's unbilled work
func GenerateInvoiceURL(projectID string) string {
	return fmt.Sprintf("%s/projects/%s/invoices/generate", APIv1Prefix, projectID)
}

// CreateInvoiceURL returns the URL for creating an empty invoice on a project
func CreateInvoiceURL(projectID string) string {
	return fmt.Sprintf("%s/projects/%s/invoices", APIv1Prefix, projectID)
}

// AddLineItemURL returns the URL for appending a line item to an invoice
func AddLineItemURL(invoiceID string) string {
	return fmt.Sprintf("%s/invoices/%s/line-items", APIv1Prefix, invoiceID)
}

// UpdateInvoiceURL returns the URL for updating an invoice's status
func UpdateInvoiceURL(id string) string {
	return fmt.Sprintf("%s/invoices/%s", APIv1Prefix, id)
}

// DeleteInvoiceURL returns the URL for deleting an invoice
func DeleteInvoiceURL(id string) string {
	return fmt.Sprintf("%s/invoices/%s", APIv1Prefix, id)
}

// Expense route helpers

// GetExpensesURL returns the URL for listing expenses
func GetExpensesURL(queryParams url.Values) string {
	return withQuery(APIv1Prefix+"/expenses", queryParams)
}

// GetExpenseCategoriesURL returns the URL for listing expense categories
func GetExpenseCategoriesURL() string {
	return APIv1Prefix + "/expenses/categories"
}

// CreateExpenseURL returns the URL for recording an expense
func CreateExpenseURL() string {
	return APIv1Prefix + "/expenses"
}

// DeleteExpenseURL returns the URL for deleting an expense
func DeleteExpenseURL(id string) string {
	return fmt.Sprintf("%s/expenses/%s", APIv1Prefix, id)
}

// User route helpers

// GetUsersURL returns the URL for getting users
func GetUsersURL(queryParams url.Values) string {
	return withQuery(APIv1Prefix+"/users", queryParams)
}

// GetUserByIDURL returns the URL for getting a user by ID
func GetUserByIDURL(id string) string {
	return fmt.Sprintf("%s/users/%s", APIv1Prefix, id)
}

// CreateUserURL returns the URL for creating a user
func CreateUserURL() string {
	return APIv1Prefix + "/users"
}

// DeleteUserURL returns the URL for deleting a user
func DeleteUserURL(id string) string {
	return fmt.Sprintf("%s/users/%s", APIv1Prefix, id)
}

// Dashboard route helper

// GetDashboardURL returns the URL for the dashboard summary
func GetDashboardURL() string {
	return APIv1Prefix + "/dashboard"
}
