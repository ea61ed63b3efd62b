package command

import "homestead-voice-assistant/internal/model"

// ProcessInput is the input for handling one final speech transcript.
type ProcessInput struct {
	Transcript string // Raw recognized speech text
	ProjectID  string // Ambient project in view, empty when none
	VoiceID    string // Optional synthesis voice for the confirmation
}

// ProcessOutput is the result of interpreting and executing a transcript.
// Exactly the record matching Command.Intent is non-nil; a business-plan
// command creates nothing and returns the payload for the client to act on.
type ProcessOutput struct {
	Command      model.ParsedCommand
	Task         *model.Task
	Item         *model.InventoryItem
	Project      *model.Project
	BusinessPlan *model.BusinessPlanPayload

	Confirmation string // Spoken confirmation text
	AudioURL     string // Synthesized confirmation audio, empty when unavailable
}
