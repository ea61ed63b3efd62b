package parser

import (
	"strings"

	"homestead-voice-assistant/internal/model"
)

// Parse classifies the transcript and extracts the payload for the chosen
// intent. Every input produces a command: unmatched utterances degrade to a
// plain task whose title is the trimmed transcript.
func (p *Parser) Parse(transcript string, pctx *model.ProjectContext) model.ParsedCommand {
	u := newUtterance(transcript, pctx)

	for _, r := range p.rules {
		if r.match(u) {
			return r.extract(p, u)
		}
	}

	// Unreachable: the final rule always matches.
	return p.defaultTask(u)
}

func newUtterance(transcript string, pctx *model.ProjectContext) utterance {
	u := utterance{
		raw:     transcript,
		lowered: strings.ToLower(transcript),
		pctx:    pctx,
	}
	u.isInventory = containsAny(u.lowered, inventoryKeywords) ||
		containsAny(u.lowered, ownedKeywords) ||
		containsAny(u.lowered, borrowedKeywords)
	u.isTask = containsAny(u.lowered, taskKeywords)
	u.infra = matchInfraDomain(u.lowered)
	return u
}

// classifierRules is the ordered decision table. Order encodes priority:
// an ambiguous utterance inside a project becomes an actionable task, while
// explicit inventory vocabulary is never swallowed by weaker task cues.
func classifierRules() []rule {
	return []rule{
		{
			name: "business-plan",
			match: func(u utterance) bool {
				return u.pctx != nil && containsAny(u.lowered, businessPlanKeywords)
			},
			extract: func(p *Parser, u utterance) model.ParsedCommand {
				return model.ParsedCommand{
					Intent: model.IntentBusinessPlan,
					BusinessPlan: &model.BusinessPlanPayload{
						ProjectID: u.pctx.ID,
						Query:     u.raw,
					},
				}
			},
		},
		{
			name: "inventory",
			match: func(u utterance) bool {
				return u.isInventory && !u.isTask
			},
			extract: func(p *Parser, u utterance) model.ParsedCommand {
				return p.extractInventory(u, inventoryTitlePatterns)
			},
		},
		{
			name: "task",
			match: func(u utterance) bool {
				return u.isTask || u.infra != nil || (u.pctx != nil && !u.isInventory)
			},
			extract: func(p *Parser, u utterance) model.ParsedCommand {
				return p.extractTask(u)
			},
		},
		{
			name: "project",
			match: func(u utterance) bool {
				return u.pctx == nil &&
					(strings.Contains(u.lowered, "project") || strings.Contains(u.lowered, "create project"))
			},
			extract: func(p *Parser, u utterance) model.ParsedCommand {
				return p.extractProject(u)
			},
		},
		{
			name: "inventory-loose",
			match: func(u utterance) bool {
				return containsAny(u.lowered, looseInventoryKeywords)
			},
			extract: func(p *Parser, u utterance) model.ParsedCommand {
				return p.extractInventory(u, looseTitlePatterns)
			},
		},
		{
			name:  "default-task",
			match: func(u utterance) bool { return true },
			extract: func(p *Parser, u utterance) model.ParsedCommand {
				return p.defaultTask(u)
			},
		},
	}
}

// defaultTask is the final fallback: the whole trimmed transcript as a
// medium-priority task, bound to the project in scope when one is present.
func (p *Parser) defaultTask(u utterance) model.ParsedCommand {
	payload := &model.TaskPayload{
		Title:    strings.TrimSpace(u.raw),
		Status:   model.TaskStatusTodo,
		Priority: model.PriorityMedium,
	}
	if u.pctx != nil {
		payload.IsProjectTask = true
		payload.ProjectID = u.pctx.ID
	}
	return model.ParsedCommand{Intent: model.IntentTask, Task: payload}
}

// containsAny reports whether the lowered transcript contains any keyword.
func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// matchInfraDomain returns the first infrastructure sub-domain whose
// vocabulary matches, or nil.
func matchInfraDomain(lowered string) *InfraKind {
	for _, d := range infraDomains {
		if containsAny(lowered, d.keywords) {
			kind := d.kind
			return &kind
		}
	}
	return nil
}
