package memory

import (
	"sync"

	"homestead-voice-assistant/internal/command/repository"
	"homestead-voice-assistant/internal/model"
	pkgLog "homestead-voice-assistant/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu       sync.RWMutex
	tasks    map[string]model.Task
	items    map[string]model.InventoryItem
	projects map[string]model.Project
}

// Ensure implRepository implements the Repository interface.
var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory command repository.
func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		l:        l,
		tasks:    make(map[string]model.Task),
		items:    make(map[string]model.InventoryItem),
		projects: make(map[string]model.Project),
	}
}
