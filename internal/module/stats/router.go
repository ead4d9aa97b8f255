package stats

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (s *ModuleStats) InitRouter(r *gin.RouterGroup) {
	statsGroup := r.Group("/stats")

	staffGroup := statsGroup.Use(middleware.Auth(model.RoleCADI))
	{
		staffGroup.GET("/segmentation", Segmentation)
		staffGroup.GET("/segmentation/export", ExportSegmentation)
		staffGroup.GET("/top", TopActivities)
		staffGroup.GET("/activity/:id/distribution", ActivityDistribution)
	}
}
