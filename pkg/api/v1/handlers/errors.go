// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidReqBody = "Invalid request body"
	ErrMsgInvalidID      = "Invalid id"
)

// Client error messages
const (
	ErrMsgClientNameRequired = "Client name is required"
	ErrMsgClientNotFound     = "Client not found"
	ErrMsgClientHasProjects  = "Client still has projects and cannot be deleted"
	ErrMsgClientCreateFailed = "Failed to create client"
	ErrMsgClientListFailed   = "Failed to list clients"
	ErrMsgClientDeleteFailed = "Failed to delete client"
)

// Project error messages
const (
	ErrMsgProjTitleRequired  = "Project title is required"
	ErrMsgProjBillingInvalid = "Invalid billing type"
	ErrMsgProjNotFound       = "Project not found"
	ErrMsgProjCreateFailed   = "Failed to create project"
	ErrMsgProjListFailed     = "Failed to list projects"
	ErrMsgProjUpdateFailed   = "Failed to update project"
	ErrMsgProjDeleteFailed   = "Failed to delete project"
)

// Task error messages
const (
	ErrMsgTaskDescRequired = "Task description is required"
	ErrMsgTaskNotFound     = "Task not found"
	ErrMsgTaskCreateFailed = "Failed to create task"
	ErrMsgTaskListFailed   = "Failed to list tasks"
	ErrMsgTaskUpdateFailed = "Failed to update task"
	ErrMsgTaskDeleteFailed = "Failed to delete task"
	ErrMsgHoursRequired    = "Hours worked must be positive"
	ErrMsgEntryNotFound    = "Time entry not found"
	ErrMsgHourlyOnly       = "Time can only be logged for hourly projects"
)

// Invoice error messages
const (
	ErrMsgInvoiceNotFound      = "Invoice not found"
	ErrMsgInvoiceListFailed    = "Failed to list invoices"
	ErrMsgInvoiceDeleteFailed  = "Failed to delete invoice"
	ErrMsgInvoiceStatusInvalid = "Invalid invoice status"
	ErrMsgInvoiceNotDraft      = "Line items can only be added to draft invoices"
	ErrMsgNothingToBill        = "No completed, unbilled tasks are available to invoice"
	ErrMsgGenerationFailed     = "An unexpected error occurred while generating the invoice"
	ErrMsgLineItemDescRequired = "Description and unit price are required"
	ErrMsgPDFFailed            = "Failed to render invoice PDF"
)

// Expense error messages
const (
	ErrMsgExpenseFieldsRequired = "Description, amount, project and category are required"
	ErrMsgExpenseNotFound       = "Expense not found"
	ErrMsgExpenseCreateFailed   = "Failed to create expense"
	ErrMsgExpenseListFailed     = "Failed to list expenses"
	ErrMsgExpenseDeleteFailed   = "Failed to delete expense"
)

// User error messages
const (
	ErrMsgUsernameRequired = "Username is required"
	ErrMsgUserNotFound     = "User not found"
	ErrMsgUserCreateFailed = "Failed to create user"
	ErrMsgUserListFailed   = "Failed to list users"
	ErrMsgUserDeleteFailed = "Failed to delete user"
)

// Dashboard error messages
const (
	ErrMsgDashboardFailed = "Failed to compute dashboard summary"
)
