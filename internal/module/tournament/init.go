package tournament

import (
	"log/slog"

	"student-wellness-system/internal/global/logger"
)

var log *slog.Logger

type ModuleTournament struct{}

func (t *ModuleTournament) GetName() string {
	return "Tournament"
}

func (t *ModuleTournament) Init() {
	log = logger.New("Tournament")
}
