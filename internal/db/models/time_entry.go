package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TimeEntry represents hours logged against a task. Only meaningful on
// hourly projects.
type TimeEntry struct {
	gorm.Model
	TaskID      uint      `json:"task_id" gorm:"not null;index"`
	HoursWorked float64   `json:"hours_worked" gorm:"not null"`
	EntryDate   time.Time `json:"entry_date" gorm:"not null"`
}

// Validate ensures that the time entry data is valid
func (e *TimeEntry) Validate() error {
	if e.HoursWorked <= 0 {
		return fmt.Errorf("hours worked must be positive")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new time entry
func (e *TimeEntry) BeforeCreate(_ *gorm.DB) error {
	if e.EntryDate.IsZero() {
		e.EntryDate = time.Now()
	}
	return e.Validate()
}
