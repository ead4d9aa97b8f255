package activity

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (a *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	// separate groups: the staff chain must not leak onto student routes
	staffGroup := r.Group("/activity")
	commonGroup := r.Group("/activity")

	staffGroup.Use(middleware.Auth(model.RoleCADI))
	{
		staffGroup.POST("/create", CreateActivity)
		staffGroup.PUT("/update/:id", UpdateActivity)
		staffGroup.DELETE("/delete/:id", DeleteActivity)
		staffGroup.POST("/:id/schedule", AddSchedule)
		staffGroup.DELETE("/schedule/:schedule_id", DeleteSchedule)
		staffGroup.GET("/reviews", ListReviews)
		staffGroup.PUT("/review/:review_id/read", MarkReviewRead)
	}

	commonGroup.Use(middleware.Auth(model.RoleStudent))
	{
		commonGroup.GET("/list", ListActivities)
		commonGroup.GET("/:id", GetActivity)
		commonGroup.GET("/:id/schedules", ListSchedules)
		commonGroup.POST("/:id/review", SubmitReview)
	}
}
