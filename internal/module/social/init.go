package social

import (
	"log/slog"

	"student-wellness-system/internal/global/logger"
)

var log *slog.Logger

type ModuleSocial struct{}

func (s *ModuleSocial) GetName() string {
	return "Social"
}

func (s *ModuleSocial) Init() {
	log = logger.New("Social")
}
