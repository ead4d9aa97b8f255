package module

import (
	"student-wellness-system/internal/module/activity"
	"student-wellness-system/internal/module/alerts"
	"student-wellness-system/internal/module/enrollment"
	"student-wellness-system/internal/module/media"
	"student-wellness-system/internal/module/participation"
	"student-wellness-system/internal/module/ping"
	"student-wellness-system/internal/module/social"
	"student-wellness-system/internal/module/stats"
	"student-wellness-system/internal/module/tournament"
	"student-wellness-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&activity.ModuleActivity{},
		&enrollment.ModuleEnrollment{},
		&participation.ModuleParticipation{},
		&tournament.ModuleTournament{},
		&social.ModuleSocial{},
		&stats.ModuleStats{},
		&alerts.ModuleAlerts{},
		&media.ModuleMedia{},
	})
}
