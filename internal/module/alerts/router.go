package alerts

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (a *ModuleAlerts) InitRouter(r *gin.RouterGroup) {
	alertsGroup := r.Group("/alerts")

	commonGroup := alertsGroup.Use(middleware.Auth(model.RoleStudent))
	{
		commonGroup.GET("/my", MyAlerts)
	}
}
