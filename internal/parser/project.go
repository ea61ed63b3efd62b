package parser

import (
	"regexp"
	"strings"

	"homestead-voice-assistant/internal/model"
)

var (
	locationClauseRe = regexp.MustCompile(`(?i)\b(?:located\s+in|based\s+in|in|at|for)\s+(.+)$`)
	projectWordsRe   = regexp.MustCompile(`(?i)\b(?:create\s+project|project)\b`)
)

// extractProject pulls title and location out of a project-creation
// transcript. Only reachable when no project context is supplied.
func (p *Parser) extractProject(u utterance) model.ParsedCommand {
	payload := &model.ProjectPayload{
		PropertyStatus: model.PropertyStatusPotential,
	}

	title := u.raw
	if m := locationClauseRe.FindStringSubmatchIndex(u.raw); m != nil {
		payload.Location = strings.TrimSpace(u.raw[m[2]:m[3]])
		title = u.raw[:m[0]]
	}

	title = projectWordsRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(multiSpaceRe.ReplaceAllString(title, " "))
	payload.Title = title

	return model.ParsedCommand{Intent: model.IntentProject, Project: payload}
}
