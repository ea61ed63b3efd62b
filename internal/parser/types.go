package parser

import "homestead-voice-assistant/internal/model"

// utterance is the pre-computed view of a transcript shared by all
// classification rules: the original casing is preserved for extraction,
// the lowered copy is used for keyword membership tests.
type utterance struct {
	raw     string
	lowered string
	pctx    *model.ProjectContext

	isInventory bool
	isTask      bool
	infra       *InfraKind // nil when no infrastructure vocabulary matched
}

// rule is one entry of the ordered classification table. The first rule whose
// match predicate holds wins; its extract function produces the command.
type rule struct {
	name    string
	match   func(u utterance) bool
	extract func(p *Parser, u utterance) model.ParsedCommand
}
