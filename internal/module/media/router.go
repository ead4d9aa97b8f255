package media

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleMedia) InitRouter(r *gin.RouterGroup) {
	mediaGroup := r.Group("/media")

	staffGroup := mediaGroup.Use(middleware.Auth(model.RoleCADI))
	{
		staffGroup.POST("/presign", PresignCoverUpload)
		staffGroup.POST("/upload", UploadCover)
	}
}
