package usecase

import (
	"fmt"

	"homestead-voice-assistant/internal/model"
)

// Confirmation strings are composed for speech synthesis: plain sentences,
// no markup.

func taskConfirmation(task model.Task) string {
	msg := fmt.Sprintf("Created task %q with %s priority", task.Title, task.Priority)
	if task.DueDate != nil {
		msg += ", due " + task.DueDate.Format("Monday, January 2")
	}
	return msg + "."
}

func inventoryConfirmation(item model.InventoryItem) string {
	qty := 1
	switch {
	case item.QuantityNeeded != nil:
		qty = *item.QuantityNeeded
	case item.QuantityOwned != nil:
		qty = *item.QuantityOwned
	case item.QuantityBorrowed != nil:
		qty = *item.QuantityBorrowed
	}

	var kind string
	switch item.ItemType {
	case model.ItemTypeOwnedResource:
		kind = "an owned resource"
	case model.ItemTypeBorrowedRental:
		kind = "a borrowed or rental item"
	default:
		kind = "a needed supply"
	}

	return fmt.Sprintf("Added %d %s to inventory as %s.", qty, item.Title, kind)
}

func projectConfirmation(project model.Project) string {
	if project.Location != "" {
		return fmt.Sprintf("Created project %q in %s.", project.Title, project.Location)
	}
	return fmt.Sprintf("Created project %q.", project.Title)
}
