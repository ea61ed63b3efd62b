package usecase

import (
	"context"
	"errors"
	"fmt"

	"homestead-voice-assistant/internal/command"
	"homestead-voice-assistant/internal/command/repository"
	"homestead-voice-assistant/internal/model"
)

// DetailProject resolves a project by ID.
func (uc *implUseCase) DetailProject(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	project, err := uc.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return model.Project{}, command.ErrProjectNotFound
		}
		return model.Project{}, fmt.Errorf("failed to get project %q: %w", id, err)
	}
	return project, nil
}
