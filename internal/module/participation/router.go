package participation

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (p *ModuleParticipation) InitRouter(r *gin.RouterGroup) {
	participationGroup := r.Group("/participation")

	commonGroup := participationGroup.Use(middleware.Auth(model.RoleStudent))
	{
		commonGroup.POST("/record", RecordParticipation)
		commonGroup.GET("/my-list", MyParticipations)
	}
}
