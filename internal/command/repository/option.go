package repository

import (
	"time"

	"homestead-voice-assistant/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task record.
type CreateTaskOptions struct {
	Title         string
	Description   string
	Status        string
	Priority      model.Priority
	DueDate       *time.Time
	IsProjectTask bool
	ProjectID     string
}

// CreateInventoryItemOptions holds the parameters for creating an inventory
// record. Exactly one quantity pointer is expected to be set.
type CreateInventoryItemOptions struct {
	Title            string
	ItemType         model.ItemType
	QuantityNeeded   *int
	QuantityOwned    *int
	QuantityBorrowed *int
	Tags             []string
	Fundraiser       bool
	ProjectID        string
}

// CreateProjectOptions holds the parameters for creating a project record.
type CreateProjectOptions struct {
	Title          string
	Location       string
	PropertyStatus string
}
