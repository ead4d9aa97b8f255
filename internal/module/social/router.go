package social

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (s *ModuleSocial) InitRouter(r *gin.RouterGroup) {
	staffGroup := r.Group("/social")
	commonGroup := r.Group("/social")

	staffGroup.Use(middleware.Auth(model.RoleCADI))
	{
		staffGroup.POST("/project/create", CreateProject)
		staffGroup.DELETE("/project/delete/:id", DeleteProject)
		staffGroup.POST("/project/:id/event", CreateEvent)
	}

	commonGroup.Use(middleware.Auth(model.RoleStudent))
	{
		commonGroup.GET("/project/list", ListProjects)
		commonGroup.GET("/project/:id/events", ListEvents)
		commonGroup.POST("/event/:event_id/enroll", EnrollEvent)
		commonGroup.DELETE("/event/:event_id/withdraw", WithdrawEvent)
	}
}
