package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homestead-voice-assistant/internal/command"
	"homestead-voice-assistant/internal/command/repository"
	"homestead-voice-assistant/internal/model"
	"homestead-voice-assistant/pkg/gcalendar"
	"homestead-voice-assistant/pkg/speech"
)

// Process interprets a final transcript, executes the resulting command and
// composes a spoken confirmation.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input command.ProcessInput) (command.ProcessOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return command.ProcessOutput{}, command.ErrEmptyTranscript
	}

	uc.l.Infof(ctx, "Process: user=%s transcript=%q project=%q", sc.UserID, transcript, input.ProjectID)

	pctx, err := uc.resolveProjectContext(ctx, input.ProjectID)
	if err != nil {
		return command.ProcessOutput{}, err
	}

	cmd := uc.parser.Parse(transcript, pctx)
	out := command.ProcessOutput{Command: cmd}

	switch cmd.Intent {
	case model.IntentTask:
		task, taskErr := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title:         cmd.Task.Title,
			Description:   cmd.Task.Description,
			Status:        cmd.Task.Status,
			Priority:      cmd.Task.Priority,
			DueDate:       cmd.Task.DueDate,
			IsProjectTask: cmd.Task.IsProjectTask,
			ProjectID:     cmd.Task.ProjectID,
		})
		if taskErr != nil {
			return command.ProcessOutput{}, fmt.Errorf("%w: %v", command.ErrExecuteFailed, taskErr)
		}
		task.CalendarLink = uc.tryCreateCalendarEvent(ctx, task)
		out.Task = &task
		out.Confirmation = taskConfirmation(task)

	case model.IntentInventory:
		item, itemErr := uc.repo.CreateInventoryItem(ctx, repository.CreateInventoryItemOptions{
			Title:            cmd.Inventory.Title,
			ItemType:         cmd.Inventory.ItemType,
			QuantityNeeded:   cmd.Inventory.QuantityNeeded,
			QuantityOwned:    cmd.Inventory.QuantityOwned,
			QuantityBorrowed: cmd.Inventory.QuantityBorrowed,
			Tags:             cmd.Inventory.Tags,
			Fundraiser:       cmd.Inventory.Fundraiser,
			ProjectID:        cmd.Inventory.ProjectID,
		})
		if itemErr != nil {
			return command.ProcessOutput{}, fmt.Errorf("%w: %v", command.ErrExecuteFailed, itemErr)
		}
		out.Item = &item
		out.Confirmation = inventoryConfirmation(item)

	case model.IntentProject:
		project, projErr := uc.repo.CreateProject(ctx, repository.CreateProjectOptions{
			Title:          cmd.Project.Title,
			Location:       cmd.Project.Location,
			PropertyStatus: cmd.Project.PropertyStatus,
		})
		if projErr != nil {
			return command.ProcessOutput{}, fmt.Errorf("%w: %v", command.ErrExecuteFailed, projErr)
		}
		out.Project = &project
		out.Confirmation = projectConfirmation(project)

	case model.IntentBusinessPlan:
		// No record is created: the client opens the assistant with this
		// payload.
		out.BusinessPlan = cmd.BusinessPlan
		out.Confirmation = "Opening the business plan assistant."
	}

	out.AudioURL = uc.trySynthesize(ctx, out.Confirmation, input.VoiceID)

	return out, nil
}

// resolveProjectContext resolves the ambient project through an LRU
// read-through cache. An empty ID means no project is in view.
func (uc *implUseCase) resolveProjectContext(ctx context.Context, projectID string) (*model.ProjectContext, error) {
	if projectID == "" {
		return nil, nil
	}

	if pc, ok := uc.projectCache.Get(projectID); ok {
		return &pc, nil
	}

	project, err := uc.repo.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, command.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to resolve project %q: %w", projectID, err)
	}

	pc := model.ProjectContext{ID: project.ID, Title: project.Title}
	uc.projectCache.Add(projectID, pc)
	return &pc, nil
}

// tryCreateCalendarEvent attempts to schedule a due-dated task in Google
// Calendar. Returns the event HTML link, or empty string on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, task model.Task) string {
	if uc.calendar == nil || task.DueDate == nil {
		return ""
	}

	startTime := *task.DueDate
	endTime := startTime.Add(time.Hour)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     task.Title,
		Description: task.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Process: calendar event creation failed for %q (non-fatal): %v", task.Title, err)
		return ""
	}

	return event.HtmlLink
}

// trySynthesize converts the confirmation text to audio. Failure degrades to
// a text-only confirmation.
func (uc *implUseCase) trySynthesize(ctx context.Context, text, voiceID string) string {
	if uc.speech == nil || text == "" {
		return ""
	}

	audio, err := uc.speech.Synthesize(ctx, speech.SynthesizeRequest{
		Text:    text,
		VoiceID: voiceID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Process: speech synthesis failed (non-fatal): %v", err)
		return ""
	}
	return audio.URL
}
