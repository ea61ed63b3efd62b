package model

import "time"

// Intent is the coarse action category a transcript is mapped to.
type Intent string

const (
	IntentTask         Intent = "TASK"
	IntentInventory    Intent = "INVENTORY"
	IntentProject      Intent = "PROJECT"
	IntentBusinessPlan Intent = "BUSINESS_PLAN"
)

// Priority is the task urgency level extracted from the transcript.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ItemType classifies an inventory entry. Exactly one quantity field on
// InventoryPayload is populated, selected by this tag.
type ItemType string

const (
	ItemTypeNeededSupply    ItemType = "needed_supply"
	ItemTypeOwnedResource   ItemType = "owned_resource"
	ItemTypeBorrowedRental  ItemType = "borrowed_or_rental"
)

// PropertyStatus of voice-created projects is always potential_property.
const PropertyStatusPotential = "potential_property"

// TaskStatusTodo is the initial status of every voice-created task.
const TaskStatusTodo = "todo"

// ProjectContext is the ambient project the user currently has in view.
// Its presence biases classification toward task/inventory association.
type ProjectContext struct {
	ID    string
	Title string
}

// TaskPayload is the extracted structure for a task command.
type TaskPayload struct {
	Title         string
	Description   string
	Status        string
	Priority      Priority
	DueDate       *time.Time
	IsProjectTask bool
	ProjectID     string
}

// InventoryPayload is the extracted structure for an inventory command.
// Exactly one of QuantityNeeded/QuantityOwned/QuantityBorrowed is non-nil,
// and it matches ItemType.
type InventoryPayload struct {
	Title            string
	ItemType         ItemType
	QuantityNeeded   *int
	QuantityOwned    *int
	QuantityBorrowed *int
	Tags             []string
	Fundraiser       bool
	ProjectID        string
}

// Quantity returns the populated quantity field regardless of item type.
func (p InventoryPayload) Quantity() int {
	switch {
	case p.QuantityNeeded != nil:
		return *p.QuantityNeeded
	case p.QuantityOwned != nil:
		return *p.QuantityOwned
	case p.QuantityBorrowed != nil:
		return *p.QuantityBorrowed
	}
	return 0
}

// ProjectPayload is the extracted structure for a project command.
type ProjectPayload struct {
	Title          string
	Location       string
	PropertyStatus string
}

// BusinessPlanPayload routes the raw transcript to the business-plan assistant
// of the project currently in scope.
type BusinessPlanPayload struct {
	ProjectID string
	Query     string
}

// ParsedCommand is the sole output of the parsing pipeline: a tagged union
// where exactly the payload named by Intent is non-nil.
type ParsedCommand struct {
	Intent       Intent
	Task         *TaskPayload
	Inventory    *InventoryPayload
	Project      *ProjectPayload
	BusinessPlan *BusinessPlanPayload
}
