package enrollment

import (
	"time"

	"student-wellness-system/config"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/global/redis"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

// ConfirmEnrollment decodes the signed token from the mail link and marks
// the enrollment as confirmed. Expired, tampered or replayed tokens are
// rejected without confirming anything.
func ConfirmEnrollment(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("falta el token de confirmación"))
		return
	}

	claims, valid := jwt.ParseConfirmToken(token)
	if !valid {
		log.Warn("Token de confirmación inválido o expirado")
		response.Fail(c, response.ErrConfirmToken)
		return
	}

	// single use: mark the token id consumed for as long as it stays valid
	ttl := time.Duration(config.Get().JWT.ConfirmExpire) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if !redis.ConsumeOnce(c.Request.Context(), claims.Id, ttl) {
		log.Warn("Token de confirmación reutilizado", "enrollment_id", claims.EnrollmentID)
		response.Fail(c, response.ErrConfirmToken)
		return
	}

	var enrollment model.Enrollment
	if err := database.DB.Where("id = ? AND user_id = ?", claims.EnrollmentID, claims.UserID).
		First(&enrollment).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("inscripción no encontrada"))
		return
	}

	if enrollment.Confirmed {
		response.SuccessWithMsg(c, "La inscripción ya estaba confirmada", gin.H{
			"enrollment_id": enrollment.ID,
		})
		return
	}

	enrollment.Confirmed = true
	if err := database.DB.Save(&enrollment).Error; err != nil {
		log.Error("Error al confirmar la inscripción", "error", err, "enrollment_id", enrollment.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Inscripción confirmada", "enrollment_id", enrollment.ID, "user_id", claims.UserID)

	response.Success(c, gin.H{
		"enrollment_id": enrollment.ID,
		"confirmed":     true,
	})
}
