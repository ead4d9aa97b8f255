package user

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")

	userGroup.POST("/register", Register)
	userGroup.POST("/login", Login)
	userGroup.GET("/faculties", ListFaculties)

	authGroup := userGroup.Use(middleware.Auth(model.RoleStudent))
	{
		authGroup.GET("/profile", Profile)
		authGroup.GET("/preferences", GetPreferences)
		authGroup.PUT("/preferences", UpdatePreferences)
	}
}
