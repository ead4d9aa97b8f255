package enrollment

import (
	"time"

	"student-wellness-system/internal/global/context"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/global/mailer"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollReq registers interest in an activity.
type EnrollReq struct {
	ActivityID uint  `json:"activity_id" binding:"required"`
	ScheduleID *uint `json:"schedule_id"`
}

// Enroll creates the (user, activity) enrollment. Duplicate requests are
// idempotent: the unique index plus ON CONFLICT DO NOTHING makes concurrent
// double-submits safe, and the caller gets an "already enrolled" success.
// The capacity check runs on a live count inside the same transaction.
func Enroll(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req EnrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la inscripción", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var activity model.Activity
	err := database.DB.First(&activity, req.ActivityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound.WithTips("actividad no encontrada"))
		return
	}
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.ScheduleID != nil {
		var schedule model.Schedule
		if err := database.DB.Where("id = ? AND activity_id = ?", *req.ScheduleID, activity.ID).
			First(&schedule).Error; err != nil {
			response.Fail(c, response.ErrNotFound.WithTips("horario no encontrado para esta actividad"))
			return
		}
	}

	enrollment := model.Enrollment{
		UserID:       payload.UserID,
		ActivityID:   activity.ID,
		ScheduleID:   req.ScheduleID,
		RegisteredAt: time.Now().Unix(),
	}

	var created bool
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if activity.RequiresRegistration && activity.MaxCapacity != nil {
			// capacity comes from a live count, never a cached counter
			var count int64
			if err := tx.Model(&model.Enrollment{}).
				Where("activity_id = ?", activity.ID).Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(*activity.MaxCapacity) {
				// still a no-op for someone already enrolled
				var existing model.Enrollment
				err := tx.Where("user_id = ? AND activity_id = ?", payload.UserID, activity.ID).
					First(&existing).Error
				if err == nil {
					return nil
				}
				return response.ErrCapacityExceeded
			}
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "activity_id"}},
			DoNothing: true,
		}).Create(&enrollment)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})

	if txErr != nil {
		var coded *response.Error
		if errors.As(txErr, &coded) {
			response.Fail(c, coded)
			return
		}
		log.Error("Error al inscribir", "error", txErr, "user_id", payload.UserID, "activity_id", activity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(txErr))
		return
	}

	if !created {
		log.Info("Inscripción duplicada ignorada", "user_id", payload.UserID, "activity_id", activity.ID)
		response.SuccessWithMsg(c, "Ya estás inscrito en esta actividad", gin.H{
			"already_enrolled": true,
		})
		return
	}

	log.Info("Inscripción creada", "user_id", payload.UserID, "activity_id", activity.ID)

	confirmationSent := sendConfirmation(&enrollment, &activity, payload.UserID)

	response.Success(c, gin.H{
		"enrollment_id":     enrollment.ID,
		"already_enrolled":  false,
		"confirmation_sent": confirmationSent,
	})
}

// sendConfirmation mails the signed confirmation link when mail is
// configured. Mail failures never fail the enrollment.
func sendConfirmation(e *model.Enrollment, a *model.Activity, userID uint) bool {
	if !mailer.Enabled() || !a.RequiresRegistration {
		return false
	}

	var user model.User
	if err := database.DB.First(&user, userID).Error; err != nil || user.Email == "" {
		return false
	}

	token, err := jwt.CreateConfirmToken(e.ID, userID)
	if err != nil {
		log.Error("Error al firmar el token de confirmación", "error", err, "enrollment_id", e.ID)
		return false
	}

	if err := mailer.SendEnrollmentConfirmation(user.Email, a.Name, token); err != nil {
		log.Error("Error al enviar el correo de confirmación", "error", err, "enrollment_id", e.ID)
		return false
	}
	return true
}

// Withdraw removes the user's enrollment in an activity.
func Withdraw(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	activityID := c.Param("activity_id")
	if activityID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("el ID de actividad no puede estar vacío"))
		return
	}

	var enrollment model.Enrollment
	err := database.DB.Where("user_id = ? AND activity_id = ?", payload.UserID, activityID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound.WithTips("no estás inscrito en esta actividad"))
		return
	}
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// hard delete: a soft-deleted row would still hold the unique index and
	// block re-enrolling later
	if err := database.DB.Unscoped().Delete(&enrollment).Error; err != nil {
		log.Error("Error al retirar la inscripción", "error", err, "enrollment_id", enrollment.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Inscripción retirada", "user_id", payload.UserID, "activity_id", activityID)
	response.Success(c, gin.H{"enrollment_id": enrollment.ID})
}

// MyEnrollments lists the user's enrollments with their activities.
func MyEnrollments(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var enrollments []model.Enrollment
	if err := database.DB.Preload("Activity").
		Where("user_id = ?", payload.UserID).
		Order("created_at DESC").
		Find(&enrollments).Error; err != nil {
		log.Error("Error al listar inscripciones", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	type enrollmentWithActivity struct {
		model.Enrollment
		Activity model.Activity `json:"activity"`
	}
	result := make([]enrollmentWithActivity, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, enrollmentWithActivity{Enrollment: e, Activity: e.Activity})
	}

	response.Success(c, result)
}

// EnrollmentStatus reports enrolled/confirmed plus the live full status of
// the activity.
func EnrollmentStatus(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	activityID := c.Param("activity_id")
	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("actividad no encontrada"))
		return
	}

	var enrolledCount int64
	database.DB.Model(&model.Enrollment{}).Where("activity_id = ?", activity.ID).Count(&enrolledCount)

	isFull := false
	if activity.RequiresRegistration && activity.MaxCapacity != nil {
		isFull = enrolledCount >= int64(*activity.MaxCapacity)
	}

	var enrollment model.Enrollment
	err := database.DB.Where("user_id = ? AND activity_id = ?", payload.UserID, activity.ID).
		First(&enrollment).Error

	enrolled := err == nil

	response.Success(c, gin.H{
		"enrolled":       enrolled,
		"confirmed":      enrolled && enrollment.Confirmed,
		"enrolled_count": enrolledCount,
		"is_full_status": isFull,
	})
}
