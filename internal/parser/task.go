package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"homestead-voice-assistant/internal/model"
	"homestead-voice-assistant/pkg/datemath"
)

var (
	dueClauseRe = regexp.MustCompile(
		`(?i)\bby\s+(next|this)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday|week|month)\b`)
	taskLeadInRe = regexp.MustCompile(
		`(?i)^\s*(?:add\s+(?:a\s+)?(?:task|todo)|create\s+a\s+(?:task|todo)|make\s+a\s+(?:task|todo)|set\s+a\s+(?:task|todo)|remind\s+me\s+to)\s*`)
	priorityWordsRe = regexp.MustCompile(
		`(?i)\b(?:urgent|asap|emergency|high priority|important|low priority|whenever)\b`)
	infraVerbRe      = regexp.MustCompile(`(?i)^\s*(?:set\s*up|setup|get|add|create|make|install)\s+`)
	infraRemainderRe = regexp.MustCompile(`(?i)\b(?:to|for|in)\s+(.+)$`)
	multiSpaceRe     = regexp.MustCompile(`\s{2,}`)
)

// extractTask pulls priority, due date, title and description out of the
// transcript for the task intent.
func (p *Parser) extractTask(u utterance) model.ParsedCommand {
	payload := &model.TaskPayload{
		Status:   model.TaskStatusTodo,
		Priority: taskPriority(u.lowered, u.infra != nil),
	}

	dueClause := dueClauseRe.FindString(u.raw)
	payload.DueDate = p.resolveDueDate(u.raw)

	title := taskLeadInRe.ReplaceAllString(u.raw, "")
	if dueClause != "" {
		title = strings.Replace(title, dueClause, "", 1)
	}
	title = priorityWordsRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(multiSpaceRe.ReplaceAllString(title, " "))

	if u.infra != nil {
		title = infraTitle(title, *u.infra)
		payload.Description = "Infrastructure task for " + strings.ToLower(title)
	}
	payload.Title = title

	// A task created while a project is in scope is always bound to it.
	if u.pctx != nil {
		payload.IsProjectTask = true
		payload.ProjectID = u.pctx.ID
	}

	return model.ParsedCommand{Intent: model.IntentTask, Task: payload}
}

// taskPriority resolves the priority with fixed precedence:
// urgent > high (keyword or infrastructure match) > low > medium.
func taskPriority(lowered string, infra bool) model.Priority {
	switch {
	case containsAny(lowered, urgentKeywords):
		return model.PriorityUrgent
	case containsAny(lowered, highKeywords) || infra:
		return model.PriorityHigh
	case containsAny(lowered, lowKeywords):
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

// resolveDueDate resolves a "by next/this <weekday|week|month>" clause against
// the injected clock, or nil when no clause is present.
func (p *Parser) resolveDueDate(transcript string) *time.Time {
	m := dueClauseRe.FindStringSubmatch(transcript)
	if m == nil {
		return nil
	}

	today := p.dateMath.StartOfDay(p.now())
	unit := strings.ToLower(m[2])

	var due time.Time
	switch unit {
	case "week":
		due = today.AddDate(0, 0, 7)
	case "month":
		due = today.AddDate(0, 1, 0)
	default:
		// A named weekday equal to today's weekday resolves to today, not
		// next week.
		target, _ := datemath.WeekdayByName(unit)
		due = datemath.UpcomingWeekday(today, target)
	}
	return &due
}

// infraTitle rewrites the cleaned title for infrastructure tasks: the leading
// verb is stripped, and electricity/water tasks are templated around the
// remainder after a to/for/in connective.
func infraTitle(cleaned string, kind InfraKind) string {
	stripped := infraVerbRe.ReplaceAllString(cleaned, "")

	var system string
	switch kind {
	case InfraElectricity:
		system = "electrical"
	case InfraWater:
		system = "water"
	default:
		return stripped
	}

	m := infraRemainderRe.FindStringSubmatch(stripped)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return cleaned
	}
	return fmt.Sprintf("Install %s system for %s", system, strings.TrimSpace(m[1]))
}
