package command

import (
	"context"

	"homestead-voice-assistant/internal/model"
)

// UseCase defines the business logic interface for the voice command domain.
type UseCase interface {
	// Process interprets a final transcript, executes the resulting command
	// and composes a spoken confirmation.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// DetailProject resolves a project by ID, for clients probing the ambient
	// project before streaming speech.
	DetailProject(ctx context.Context, sc model.Scope, id string) (model.Project, error)
}
