// Package billing derives invoice line items from a project's billing type
// and its eligible tasks. It is a pure computation: persisting the result and
// marking tasks as billed is the caller's responsibility.
package billing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/solobooks/solobooks/internal/db/models"
)

// maxSummaryLen bounds the task summary embedded in a flat-fee description
const maxSummaryLen = 195

// Sentinel errors returned by BuildLineItems
var (
	// ErrNothingToBill indicates no eligible task produced a line item.
	// It is an expected outcome, not a failure: no invoice should be
	// created and no task marked billed.
	ErrNothingToBill = errors.New("no billable line items")
	// ErrUnknownBillingType indicates the project carries a billing type
	// the engine does not understand. Billing types are validated at
	// project creation, so this is a configuration error.
	ErrUnknownBillingType = errors.New("unknown billing type")
)

// CandidateItem is a line item the engine proposes for a new invoice,
// together with the tasks it will bill
type CandidateItem struct {
	Description string
	Quantity    float64
	UnitPrice   decimal.Decimal
	TaskIDs     []uint
}

// Amount returns quantity times unit price
func (c CandidateItem) Amount() decimal.Decimal {
	return decimal.NewFromFloat(c.Quantity).Mul(c.UnitPrice)
}

// BuildLineItems maps the project's eligible tasks to candidate line items
// under the project's billing type. Tasks must be completed, billable, not
// yet billed, and have their time entries preloaded.
//
// Hourly tasks without logged hours and per-task tasks without a positive
// fee are skipped silently; they stay eligible for a future invoice. If
// every task is skipped (or none were given) the engine returns
// ErrNothingToBill.
func BuildLineItems(project *models.Project, tasks []models.Task) ([]CandidateItem, error) {
	var items []CandidateItem

	switch project.BillingType {
	case models.BillingTypeFlatFee:
		items = flatFeeItems(project, tasks)
	case models.BillingTypeHourly:
		items = hourlyItems(project, tasks)
	case models.BillingTypePerTask:
		items = perTaskItems(tasks)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBillingType, project.BillingType)
	}

	if len(items) == 0 {
		return nil, ErrNothingToBill
	}
	return items, nil
}

// flatFeeItems produces a single line item covering the entire task set
func flatFeeItems(project *models.Project, tasks []models.Task) []CandidateItem {
	if len(tasks) == 0 {
		return nil
	}

	summaries := make([]string, 0, len(tasks))
	taskIDs := make([]uint, 0, len(tasks))
	for _, task := range tasks {
		summaries = append(summaries, task.Description)
		taskIDs = append(taskIDs, task.ID)
	}
	summary := strings.Join(summaries, "; ")
	if runes := []rune(summary); len(runes) > maxSummaryLen {
		summary = string(runes[:maxSummaryLen]) + "..."
	}

	return []CandidateItem{{
		Description: fmt.Sprintf("Project: %s - %s", project.Title, summary),
		Quantity:    1,
		UnitPrice:   project.FlatFeeAmount,
		TaskIDs:     taskIDs,
	}}
}

// hourlyItems produces one line item per task with logged hours
func hourlyItems(project *models.Project, tasks []models.Task) []CandidateItem {
	var items []CandidateItem
	for _, task := range tasks {
		hours := task.TotalHoursLogged()
		if hours <= 0 {
			continue
		}
		rate := project.HourlyRate
		if task.OverrideRate != nil {
			rate = *task.OverrideRate
		}
		items = append(items, CandidateItem{
			Description: task.Description,
			Quantity:    hours,
			UnitPrice:   rate,
			TaskIDs:     []uint{task.ID},
		})
	}
	return items
}

// perTaskItems produces one line item per task with a positive fee
func perTaskItems(tasks []models.Task) []CandidateItem {
	var items []CandidateItem
	for _, task := range tasks {
		if task.TaskFee == nil || !task.TaskFee.IsPositive() {
			continue
		}
		quantity := task.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, CandidateItem{
			Description: task.Description,
			Quantity:    float64(quantity),
			UnitPrice:   *task.TaskFee,
			TaskIDs:     []uint{task.ID},
		})
	}
	return items
}
