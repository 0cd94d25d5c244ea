package client

import (
	"context"
	"net/http"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
	"github.com/solobooks/solobooks/pkg/api/v1/routes"
)

// Client methods implementation

// CreateClient creates a new client record
func (c *APIClient) CreateClient(ctx context.Context, req handlers.CreateClientRequest) (models.Client, error) {
	var client models.Client
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateClientURL(), req, &client)
	return client, err
}

// GetClient retrieves a client by ID
func (c *APIClient) GetClient(ctx context.Context, id uint) (models.Client, error) {
	var client models.Client
	err := c.executeRequest(ctx, http.MethodGet, routes.GetClientURL(formatID(id)), nil, &client)
	return client, err
}

// ListClients retrieves one page of clients
func (c *APIClient) ListClients(ctx context.Context, page int) (ClientsPage, error) {
	var resp ClientsPage
	err := c.executeRequest(ctx, http.MethodGet, routes.GetClientsURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// DeleteClient deletes a client by ID
func (c *APIClient) DeleteClient(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteClientURL(formatID(id)), nil, nil)
}

// Project methods implementation

// CreateProject creates a new project
func (c *APIClient) CreateProject(ctx context.Context, req handlers.CreateProjectRequest) (models.Project, error) {
	var project models.Project
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateProjectURL(), req, &project)
	return project, err
}

// GetProject retrieves a project by ID with its tasks
func (c *APIClient) GetProject(ctx context.Context, id uint) (models.Project, error) {
	var project models.Project
	err := c.executeRequest(ctx, http.MethodGet, routes.GetProjectURL(formatID(id)), nil, &project)
	return project, err
}

// ListProjects retrieves one page of projects
func (c *APIClient) ListProjects(ctx context.Context, page int) (ProjectsPage, error) {
	var resp ProjectsPage
	err := c.executeRequest(ctx, http.MethodGet, routes.GetProjectsURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// UpdateProject updates a project's title or notes
func (c *APIClient) UpdateProject(ctx context.Context, id uint, req handlers.UpdateProjectRequest) (models.Project, error) {
	var project models.Project
	err := c.executeRequest(ctx, http.MethodPut, routes.UpdateProjectURL(formatID(id)), req, &project)
	return project, err
}

// DeleteProject deletes a project with its tasks and invoices
func (c *APIClient) DeleteProject(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteProjectURL(formatID(id)), nil, nil)
}

// Task methods implementation

// CreateTask adds a task to a project
func (c *APIClient) CreateTask(ctx context.Context, projectID uint, req handlers.CreateTaskRequest) (models.Task, error) {
	var task models.Task
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateTaskURL(formatID(projectID)), req, &task)
	return task, err
}

// ListTasks retrieves one page of a project's tasks
func (c *APIClient) ListTasks(ctx context.Context, projectID uint, page int) (TasksPage, error) {
	var resp TasksPage
	err := c.executeRequest(ctx, http.MethodGet, routes.GetProjectTasksURL(formatID(projectID), pageQuery(page)), nil, &resp)
	return resp, err
}

// UpdateTask updates a task's description and billing fields
func (c *APIClient) UpdateTask(ctx context.Context, id uint, req handlers.CreateTaskRequest) (models.Task, error) {
	var task models.Task
	err := c.executeRequest(ctx, http.MethodPut, routes.UpdateTaskURL(formatID(id)), req, &task)
	return task, err
}

// ToggleTask flips a task's completion flag and returns the new value
func (c *APIClient) ToggleTask(ctx context.Context, id uint) (bool, error) {
	var resp struct {
		IsCompleted bool `json:"is_completed"`
	}
	err := c.executeRequest(ctx, http.MethodPut, routes.ToggleTaskURL(formatID(id)), nil, &resp)
	return resp.IsCompleted, err
}

// DeleteTask deletes a task by ID
func (c *APIClient) DeleteTask(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteTaskURL(formatID(id)), nil, nil)
}

// LogTime records hours worked against a task and returns the task's new total
func (c *APIClient) LogTime(ctx context.Context, taskID uint, req handlers.LogTimeRequest) (float64, error) {
	var resp struct {
		TotalHours float64 `json:"total_hours"`
	}
	err := c.executeRequest(ctx, http.MethodPost, routes.LogTimeURL(formatID(taskID)), req, &resp)
	return resp.TotalHours, err
}

// QuickLogTime records a quarter hour against a task
func (c *APIClient) QuickLogTime(ctx context.Context, taskID uint) (float64, error) {
	var resp struct {
		TotalHours float64 `json:"total_hours"`
	}
	err := c.executeRequest(ctx, http.MethodPost, routes.QuickLogTimeURL(formatID(taskID)), nil, &resp)
	return resp.TotalHours, err
}

// DeleteTimeEntry deletes a time entry by ID
func (c *APIClient) DeleteTimeEntry(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteTimeEntryURL(formatID(id)), nil, nil)
}

// Invoice methods implementation

// GenerateInvoice builds an invoice from a project's completed, unbilled tasks.
// Returns ErrNothingToBill when the project has no billable work.
func (c *APIClient) GenerateInvoice(ctx context.Context, projectID uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := c.executeRequest(ctx, http.MethodPost, routes.GenerateInvoiceURL(formatID(projectID)), nil, &invoice)
	return invoice, err
}

// CreateInvoice creates an empty invoice shell for a project
func (c *APIClient) CreateInvoice(ctx context.Context, projectID uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateInvoiceURL(formatID(projectID)), nil, &invoice)
	return invoice, err
}

// GetInvoice retrieves an invoice by ID with its line items
func (c *APIClient) GetInvoice(ctx context.Context, id uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := c.executeRequest(ctx, http.MethodGet, routes.GetInvoiceURL(formatID(id)), nil, &invoice)
	return invoice, err
}

// ListInvoices retrieves one page of invoices
func (c *APIClient) ListInvoices(ctx context.Context, page int) (InvoicesPage, error) {
	var resp InvoicesPage
	err := c.executeRequest(ctx, http.MethodGet, routes.GetInvoicesURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// AddLineItem appends a manually entered line item to a draft invoice
func (c *APIClient) AddLineItem(ctx context.Context, invoiceID uint, req handlers.AddLineItemRequest) (models.LineItem, error) {
	var item models.LineItem
	err := c.executeRequest(ctx, http.MethodPost, routes.AddLineItemURL(formatID(invoiceID)), req, &item)
	return item, err
}

// UpdateInvoice updates an invoice's status and due date
func (c *APIClient) UpdateInvoice(ctx context.Context, id uint, req handlers.UpdateInvoiceRequest) error {
	return c.executeRequest(ctx, http.MethodPut, routes.UpdateInvoiceURL(formatID(id)), req, nil)
}

// DeleteInvoice deletes an invoice, returning its billed tasks to the billable pool
func (c *APIClient) DeleteInvoice(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteInvoiceURL(formatID(id)), nil, nil)
}

// DownloadInvoicePDF retrieves the rendered PDF bytes for an invoice
func (c *APIClient) DownloadInvoicePDF(ctx context.Context, id uint) ([]byte, error) {
	agent, err := c.createAgent(ctx, http.MethodGet, routes.DownloadInvoicePDFURL(formatID(id)), nil)
	if err != nil {
		return nil, err
	}
	return c.doRawRequest(agent)
}

// Expense methods implementation

// CreateExpense records a new expense
func (c *APIClient) CreateExpense(ctx context.Context, req handlers.CreateExpenseRequest) (models.Expense, error) {
	var expense models.Expense
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateExpenseURL(), req, &expense)
	return expense, err
}

// ListExpenses retrieves one page of expenses
func (c *APIClient) ListExpenses(ctx context.Context, page int) (ExpensesPage, error) {
	var resp ExpensesPage
	err := c.executeRequest(ctx, http.MethodGet, routes.GetExpensesURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// ListExpenseCategories retrieves the expense categories
func (c *APIClient) ListExpenseCategories(ctx context.Context) ([]models.ExpenseCategory, error) {
	var categories []models.ExpenseCategory
	err := c.executeRequest(ctx, http.MethodGet, routes.GetExpenseCategoriesURL(), nil, &categories)
	return categories, err
}

// DeleteExpense deletes an expense by ID
func (c *APIClient) DeleteExpense(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteExpenseURL(formatID(id)), nil, nil)
}

// User methods implementation

// CreateUser creates a new user and returns its ID
func (c *APIClient) CreateUser(ctx context.Context, req handlers.CreateUserRequest) (uint, error) {
	var resp struct {
		ID uint `json:"id"`
	}
	err := c.executeRequest(ctx, http.MethodPost, routes.CreateUserURL(), req, &resp)
	return resp.ID, err
}

// GetUserByID retrieves a user by ID
func (c *APIClient) GetUserByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := c.executeRequest(ctx, http.MethodGet, routes.GetUserByIDURL(formatID(id)), nil, &user)
	return user, err
}

// ListUsers retrieves one page of users
func (c *APIClient) ListUsers(ctx context.Context, page int) (UsersPage, error) {
	var resp UsersPage
	err := c.executeRequest(ctx, http.MethodGet, routes.GetUsersURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// DeleteUser deletes a user by ID
func (c *APIClient) DeleteUser(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteUserURL(formatID(id)), nil, nil)
}

// Dashboard methods implementation

// GetDashboard retrieves the revenue and expense summary
func (c *APIClient) GetDashboard(ctx context.Context) (services.Summary, error) {
	var summary services.Summary
	err := c.executeRequest(ctx, http.MethodGet, routes.GetDashboardURL(), nil, &summary)
	return summary, err
}
