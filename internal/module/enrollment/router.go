package enrollment

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (e *ModuleEnrollment) InitRouter(r *gin.RouterGroup) {
	enrollmentGroup := r.Group("/enrollment")

	// confirmation links arrive from mail clients without a session
	enrollmentGroup.GET("/confirm", ConfirmEnrollment)

	commonGroup := enrollmentGroup.Use(middleware.Auth(model.RoleStudent))
	{
		commonGroup.POST("/enroll", Enroll)
		commonGroup.DELETE("/withdraw/:activity_id", Withdraw)
		commonGroup.GET("/my-list", MyEnrollments)
		commonGroup.GET("/status/:activity_id", EnrollmentStatus)
	}
}
