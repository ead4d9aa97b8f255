package alerts

import (
	"log/slog"

	"student-wellness-system/internal/global/logger"
)

var log *slog.Logger

type ModuleAlerts struct{}

func (a *ModuleAlerts) GetName() string {
	return "Alerts"
}

func (a *ModuleAlerts) Init() {
	log = logger.New("Alerts")
}
