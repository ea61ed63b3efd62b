package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"homestead-voice-assistant/internal/command"
	"homestead-voice-assistant/internal/command/repository"
	"homestead-voice-assistant/internal/model"
	"homestead-voice-assistant/internal/parser"
	"homestead-voice-assistant/pkg/gcalendar"
	pkgLog "homestead-voice-assistant/pkg/log"
	"homestead-voice-assistant/pkg/speech"
)

// projectCacheSize bounds the read-through cache of resolved project contexts.
const projectCacheSize = 128

type implUseCase struct {
	l        pkgLog.Logger
	parser   parser.CommandParser
	repo     repository.Repository
	calendar *gcalendar.Client // optional
	speech   speech.Synthesizer // optional
	timezone string

	projectCache *lru.Cache[string, model.ProjectContext]
}

// Ensure implUseCase implements the UseCase interface.
var _ command.UseCase = (*implUseCase)(nil)

// New creates a new command UseCase instance. Calendar and speech clients are
// optional; passing nil disables the corresponding enrichment.
func New(
	l pkgLog.Logger,
	p parser.CommandParser,
	repo repository.Repository,
	calendar *gcalendar.Client,
	synth speech.Synthesizer,
	timezone string,
) *implUseCase {
	cache, _ := lru.New[string, model.ProjectContext](projectCacheSize)
	return &implUseCase{
		l:            l,
		parser:       p,
		repo:         repo,
		calendar:     calendar,
		speech:       synth,
		timezone:     timezone,
		projectCache: cache,
	}
}
