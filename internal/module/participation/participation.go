package participation

import (
	"time"

	"student-wellness-system/internal/global/context"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// timeLayouts are the accepted attendance time formats; anything else is
// tolerated as a null time rather than failing the whole request.
var timeLayouts = []string{"15:04", "15:04:05"}

// RecordReq registers an attendance event: "actually attended on date X",
// distinct from being enrolled.
type RecordReq struct {
	ItemType   string `json:"item_type" binding:"required"`
	ItemID     uint   `json:"item_id" binding:"required"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	ScheduleID *uint  `json:"schedule_id"`
}

// RecordParticipation records that the user attended an item on a date.
// The date defaults to today; a second submission for the same day is
// surfaced as a duplicate warning, never a second row.
func RecordParticipation(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req RecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la asistencia", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !itemExists(req.ItemType, req.ItemID) {
		switch req.ItemType {
		case model.ItemActivity, model.ItemTournament, model.ItemEvent:
			response.Fail(c, response.ErrNotFound.WithTips("el elemento no existe"))
		default:
			response.Fail(c, response.ErrInvalidRequest.WithTips("tipo de elemento desconocido"))
		}
		return
	}

	attendanceDate := time.Now().Format(dateLayout)
	if req.Fecha != "" {
		parsed, err := time.Parse(dateLayout, req.Fecha)
		if err != nil {
			response.Fail(c, response.ErrInvalidDate)
			return
		}
		attendanceDate = parsed.Format(dateLayout)
	}

	attendanceTime := parseAttendanceTime(req.Hora)

	participation := model.Participation{
		ItemType:       req.ItemType,
		ItemID:         req.ItemID,
		UserID:         payload.UserID,
		AttendanceDate: attendanceDate,
		AttendanceTime: attendanceTime,
		ScheduleID:     req.ScheduleID,
	}

	result := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "item_type"}, {Name: "item_id"}, {Name: "user_id"}, {Name: "attendance_date"},
		},
		DoNothing: true,
	}).Create(&participation)
	if result.Error != nil {
		log.Error("Error al registrar la asistencia", "error", result.Error, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}

	if result.RowsAffected == 0 {
		log.Info("Asistencia duplicada ignorada",
			"user_id", payload.UserID, "item_id", req.ItemID, "date", attendanceDate)
		response.SuccessWithMsg(c, "Ya registraste tu asistencia para este día", gin.H{
			"duplicate": true,
		})
		return
	}

	log.Info("Asistencia registrada",
		"user_id", payload.UserID, "item_type", req.ItemType, "item_id", req.ItemID, "date", attendanceDate)

	response.Success(c, participation)
}

// parseAttendanceTime normalizes an optional time, returning nil when it
// fails to parse in any accepted layout.
func parseAttendanceTime(hora string) *string {
	if hora == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, hora); err == nil {
			normalized := parsed.Format("15:04:05")
			return &normalized
		}
	}
	return nil
}

func itemExists(itemType string, itemID uint) bool {
	var count int64
	switch itemType {
	case model.ItemActivity:
		database.DB.Model(&model.Activity{}).Where("id = ?", itemID).Count(&count)
	case model.ItemTournament:
		database.DB.Model(&model.Tournament{}).Where("id = ?", itemID).Count(&count)
	case model.ItemEvent:
		database.DB.Model(&model.SocialEvent{}).Where("id = ?", itemID).Count(&count)
	default:
		return false
	}
	return count > 0
}

// MyParticipationsReq filters the user's attendance history.
type MyParticipationsReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// MyParticipations lists the user's attendance records, newest first.
func MyParticipations(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req MyParticipationsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	query := database.DB.Where("user_id = ?", payload.UserID)
	if req.From != "" {
		if _, err := time.Parse(dateLayout, req.From); err != nil {
			response.Fail(c, response.ErrInvalidDate)
			return
		}
		query = query.Where("attendance_date >= ?", req.From)
	}
	if req.To != "" {
		if _, err := time.Parse(dateLayout, req.To); err != nil {
			response.Fail(c, response.ErrInvalidDate)
			return
		}
		query = query.Where("attendance_date <= ?", req.To)
	}

	var participations []model.Participation
	if err := query.Order("attendance_date DESC").Find(&participations).Error; err != nil {
		log.Error("Error al listar asistencias", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, participations)
}
