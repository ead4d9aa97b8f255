package activity

import (
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ScheduleReq is a weekly slot for an activity.
type ScheduleReq struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// AddSchedule attaches a weekly slot to an activity.
func AddSchedule(c *gin.Context) {
	a, ok := activityIDValidator(c)
	if !ok {
		return
	}

	var req ScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar el horario", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !validDays[req.Day] {
		response.Fail(c, response.ErrInvalidRequest.WithTips("día de la semana inválido"))
		return
	}

	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("hora de inicio inválida, se espera HH:MM"))
		return
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("hora de fin inválida, se espera HH:MM"))
		return
	}
	if !end.After(start) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("la hora de fin debe ser posterior a la de inicio"))
		return
	}

	schedule := model.Schedule{
		ActivityID: &a.ID,
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	if err := database.DB.Create(&schedule).Error; err != nil {
		log.Error("Error al crear el horario", "error", err, "activity_id", a.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, schedule)
}

// ListSchedules lists the weekly slots of an activity.
func ListSchedules(c *gin.Context) {
	a, ok := activityIDValidator(c)
	if !ok {
		return
	}

	var schedules []model.Schedule
	if err := database.DB.Where("activity_id = ?", a.ID).Find(&schedules).Error; err != nil {
		log.Error("Error al listar horarios", "error", err, "activity_id", a.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, schedules)
}

// DeleteSchedule removes one weekly slot.
func DeleteSchedule(c *gin.Context) {
	scheduleID := c.Param("schedule_id")
	if scheduleID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("el ID de horario no puede estar vacío"))
		return
	}

	var schedule model.Schedule
	if err := database.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("horario no encontrado"))
		return
	}

	if err := database.DB.Delete(&schedule).Error; err != nil {
		log.Error("Error al eliminar el horario", "error", err, "schedule_id", schedule.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"schedule_id": schedule.ID})
}
