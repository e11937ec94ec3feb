package game

import (
	"github.com/charmbracelet/log"

	"github.com/mkovalev/bitgate/internal/level"
	"github.com/mkovalev/bitgate/internal/mask"
	"github.com/mkovalev/bitgate/internal/objects"
	"github.com/mkovalev/bitgate/internal/respawn"
	"github.com/mkovalev/bitgate/internal/session"
)

// graphProvider builds object graphs from level definitions on behalf of the
// session machine. Each build resizes the mask to the level's bit count
// before any object registers.
type graphProvider struct {
	defs   []*level.Def
	logger *log.Logger
}

func (p *graphProvider) Count() int {
	return len(p.defs)
}

func (p *graphProvider) Build(index int, store *mask.Store, tracker *respawn.Tracker) (session.Level, error) {
	def := p.defs[index]
	store.SetMaxBits(def.MaskBits)
	env := objects.Env{Store: store, Tracker: tracker, Logger: p.logger}
	return objects.BuildGraph(def, env)
}
