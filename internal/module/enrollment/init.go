package enrollment

import (
	"log/slog"

	"student-wellness-system/internal/global/logger"
)

var log *slog.Logger

type ModuleEnrollment struct{}

func (e *ModuleEnrollment) GetName() string {
	return "Enrollment"
}

func (e *ModuleEnrollment) Init() {
	log = logger.New("Enrollment")
}
