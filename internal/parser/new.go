package parser

import (
	"time"

	"homestead-voice-assistant/internal/model"
	"homestead-voice-assistant/pkg/datemath"
)

// CommandParser turns a raw speech transcript and an optional project context
// into a ParsedCommand. Implementations must be pure: no I/O, no shared state,
// safe for concurrent use.
type CommandParser interface {
	Parse(transcript string, pctx *model.ProjectContext) model.ParsedCommand
}

// Parser is the rule-based transcript parser.
type Parser struct {
	dateMath *datemath.Parser
	now      func() time.Time
	rules    []rule
}

// Ensure Parser implements CommandParser.
var _ CommandParser = (*Parser)(nil)

// New creates a new Parser. The now function is the injected clock used for
// due-date resolution; pass nil to use time.Now.
func New(dm *datemath.Parser, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	p := &Parser{
		dateMath: dm,
		now:      now,
	}
	p.rules = classifierRules()
	return p
}
