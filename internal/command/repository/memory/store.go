package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"homestead-voice-assistant/internal/command/repository"
	"homestead-voice-assistant/internal/model"
)

// CreateTask stores a new task record and returns it with its generated ID.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	task := model.Task{
		ID:            uuid.NewString(),
		Title:         opt.Title,
		Description:   opt.Description,
		Status:        opt.Status,
		Priority:      opt.Priority,
		DueDate:       opt.DueDate,
		IsProjectTask: opt.IsProjectTask,
		ProjectID:     opt.ProjectID,
		CreatedAt:     time.Now(),
	}

	r.mu.Lock()
	r.tasks[task.ID] = task
	r.mu.Unlock()

	r.l.Infof(ctx, "memory repository: created task %q id=%s", task.Title, task.ID)
	return task, nil
}

// CreateInventoryItem stores a new inventory record.
func (r *implRepository) CreateInventoryItem(ctx context.Context, opt repository.CreateInventoryItemOptions) (model.InventoryItem, error) {
	item := model.InventoryItem{
		ID:               uuid.NewString(),
		Title:            opt.Title,
		ItemType:         opt.ItemType,
		QuantityNeeded:   opt.QuantityNeeded,
		QuantityOwned:    opt.QuantityOwned,
		QuantityBorrowed: opt.QuantityBorrowed,
		Tags:             opt.Tags,
		Fundraiser:       opt.Fundraiser,
		ProjectID:        opt.ProjectID,
		CreatedAt:        time.Now(),
	}

	r.mu.Lock()
	r.items[item.ID] = item
	r.mu.Unlock()

	r.l.Infof(ctx, "memory repository: created inventory item %q id=%s", item.Title, item.ID)
	return item, nil
}

// CreateProject stores a new project record.
func (r *implRepository) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	project := model.Project{
		ID:             uuid.NewString(),
		Title:          opt.Title,
		Location:       opt.Location,
		PropertyStatus: opt.PropertyStatus,
		CreatedAt:      time.Now(),
	}

	r.mu.Lock()
	r.projects[project.ID] = project
	r.mu.Unlock()

	r.l.Infof(ctx, "memory repository: created project %q id=%s", project.Title, project.ID)
	return project, nil
}

// GetProject returns the project with the given ID, or ErrProjectNotFound.
func (r *implRepository) GetProject(ctx context.Context, id string) (model.Project, error) {
	r.mu.RLock()
	project, ok := r.projects[id]
	r.mu.RUnlock()

	if !ok {
		return model.Project{}, repository.ErrProjectNotFound
	}
	return project, nil
}
