package model

import "time"

// Task is a task record created by the command executor.
type Task struct {
	ID            string
	Title         string
	Description   string
	Status        string
	Priority      Priority
	DueDate       *time.Time
	IsProjectTask bool
	ProjectID     string
	CalendarLink  string // Deep link to the Google Calendar event (may be empty)
	CreatedAt     time.Time
}

// InventoryItem is an inventory record created by the command executor.
type InventoryItem struct {
	ID               string
	Title            string
	ItemType         ItemType
	QuantityNeeded   *int
	QuantityOwned    *int
	QuantityBorrowed *int
	Tags             []string
	Fundraiser       bool
	ProjectID        string
	CreatedAt        time.Time
}

// Project is a project record created by the command executor.
type Project struct {
	ID             string
	Title          string
	Location       string
	PropertyStatus string
	CreatedAt      time.Time
}
