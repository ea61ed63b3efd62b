package repository

import (
	"context"

	"homestead-voice-assistant/internal/model"
)

// Repository is the command executor boundary: one creation operation per
// command variant plus the project lookup used to resolve ambient context.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	CreateInventoryItem(ctx context.Context, opt CreateInventoryItemOptions) (model.InventoryItem, error)
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	GetProject(ctx context.Context, id string) (model.Project, error)
}
