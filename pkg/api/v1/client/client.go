// Package client provides the API client for interacting with the SoloBooks API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/internal/types"
	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
	"github.com/solobooks/solobooks/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// ErrNothingToBill is returned when invoice generation found no billable work
var ErrNothingToBill = fmt.Errorf("nothing to bill")

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Client Endpoints
	CreateClient(ctx context.Context, req handlers.CreateClientRequest) (models.Client, error)
	GetClient(ctx context.Context, id uint) (models.Client, error)
	ListClients(ctx context.Context, page int) (ClientsPage, error)
	DeleteClient(ctx context.Context, id uint) error

	// Project Endpoints
	CreateProject(ctx context.Context, req handlers.CreateProjectRequest) (models.Project, error)
	GetProject(ctx context.Context, id uint) (models.Project, error)
	ListProjects(ctx context.Context, page int) (ProjectsPage, error)
	UpdateProject(ctx context.Context, id uint, req handlers.UpdateProjectRequest) (models.Project, error)
	DeleteProject(ctx context.Context, id uint) error

	// Task Endpoints
	CreateTask(ctx context.Context, projectID uint, req handlers.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, projectID uint, page int) (TasksPage, error)
	UpdateTask(ctx context.Context, id uint, req handlers.CreateTaskRequest) (models.Task, error)
	ToggleTask(ctx context.Context, id uint) (bool, error)
	DeleteTask(ctx context.Context, id uint) error
	LogTime(ctx context.Context, taskID uint, req handlers.LogTimeRequest) (float64, error)
	QuickLogTime(ctx context.Context, taskID uint) (float64, error)
	DeleteTimeEntry(ctx context.Context, id uint) error

	// Invoice Endpoints
	GenerateInvoice(ctx context.Context, projectID uint) (models.Invoice, error)
	CreateInvoice(ctx context.Context, projectID uint) (models.Invoice, error)
	GetInvoice(ctx context.Context, id uint) (models.Invoice, error)
	ListInvoices(ctx context.Context, page int) (InvoicesPage, error)
	AddLineItem(ctx context.Context, invoiceID uint, req handlers.AddLineItemRequest) (models.LineItem, error)
	UpdateInvoice(ctx context.Context, id uint, req handlers.UpdateInvoiceRequest) error
	DeleteInvoice(ctx context.Context, id uint) error
	DownloadInvoicePDF(ctx context.Context, id uint) ([]byte, error)

	// Expense Endpoints
	CreateExpense(ctx context.Context, req handlers.CreateExpenseRequest) (models.Expense, error)
	ListExpenses(ctx context.Context, page int) (ExpensesPage, error)
	ListExpenseCategories(ctx context.Context) ([]models.ExpenseCategory, error)
	DeleteExpense(ctx context.Context, id uint) error

	// User Endpoints
	CreateUser(ctx context.Context, req handlers.CreateUserRequest) (uint, error)
	GetUserByID(ctx context.Context, id uint) (models.User, error)
	ListUsers(ctx context.Context, page int) (UsersPage, error)
	DeleteUser(ctx context.Context, id uint) error

	// Dashboard Endpoint
	GetDashboard(ctx context.Context) (services.Summary, error)
}

var _ Client = &APIClient{}

// Pagination mirrors the page metadata returned by list endpoints
type Pagination struct {
	Total  int `json:"total"`
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ClientsPage is one page of clients
type ClientsPage struct {
	Clients    []models.Client `json:"clients"`
	Pagination Pagination      `json:"pagination"`
}

// ProjectsPage is one page of projects
type ProjectsPage struct {
	Projects   []models.Project `json:"projects"`
	Pagination Pagination       `json:"pagination"`
}

// TasksPage is one page of tasks
type TasksPage struct {
	Tasks      []models.Task `json:"tasks"`
	Pagination Pagination    `json:"pagination"`
}

// InvoicesPage is one page of invoices
type InvoicesPage struct {
	Invoices   []models.Invoice `json:"invoices"`
	Pagination Pagination       `json:"pagination"`
}

// ExpensesPage is one page of expenses
type ExpensesPage struct {
	Expenses   []models.Expense `json:"expenses"`
	Pagination Pagination       `json:"pagination"`
}

// UsersPage is one page of users
type UsersPage struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration

	// OwnerID identifies the acting user on every request
	OwnerID uint
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
	ownerID uint
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	_, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: opts.Timeout,
		ownerID: opts.OwnerID,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	// Set common headers
	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")
	if c.ownerID != 0 {
		agent.Set(middleware.OwnerIDHeader, strconv.FormatUint(uint64(c.ownerID), 10))
	}

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// envelope mirrors the server's response wrapper with the payload left raw
type envelope struct {
	Slug  types.Slug      `json:"slug"`
	Error string          `json:"error,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// doRequest sends the HTTP request and decodes the payload into v
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	var resp envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &resp); err != nil && statusCode >= 200 && statusCode < 300 {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	if resp.Slug == types.NothingToBillSlug {
		return ErrNothingToBill
	}
	if statusCode < 200 || statusCode >= 300 {
		msg := resp.Error
		if msg == "" {
			msg = string(body)
		}
		return &fiber.Error{
			Code:    statusCode,
			Message: msg,
		}
	}

	if v != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, v); err != nil {
			return fmt.Errorf("error decoding response data: %w", err)
		}
	}
	return nil
}

// doRawRequest sends the HTTP request and returns the raw body, for
// endpoints that do not use the JSON envelope
func (c *APIClient) doRawRequest(agent *fiber.Agent) ([]byte, error) {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error sending request: %w", errs[0])
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &fiber.Error{
			Code:    statusCode,
			Message: string(body),
		}
	}
	return body, nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	return c.doRequest(agent, response)
}

// pageQuery builds the query values for a list request
func pageQuery(page int) url.Values {
	if page <= 1 {
		return nil
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return q
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Health check

// HealthCheck checks the API health status
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	agent, err := c.createAgent(ctx, http.MethodGet, routes.HealthCheckURL(), nil)
	if err != nil {
		return nil, err
	}
	body, err := c.doRawRequest(agent)
	if err != nil {
		return nil, err
	}
	var status map[string]string
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return status, nil
}
