package user

import (
	"student-wellness-system/internal/global/context"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PreferencesReq carries the six interest/notification flags.
type PreferencesReq struct {
	AlertsEnabled     *bool  `json:"alerts_enabled"`
	PreferredType     string `json:"preferred_type"`
	PreferredCategory string `json:"preferred_category" binding:"omitempty,oneof=group individual"`
	NotifyEnrollment  *bool  `json:"notify_enrollment"`
	NotifyUpcoming    *bool  `json:"notify_upcoming"`
	WeeklySummary     *bool  `json:"weekly_summary"`
}

// GetPreferences returns the user's preference row, or a not-found when the
// user never configured one.
func GetPreferences(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var pref model.UserPreference
	err := database.DB.Where("user_id = ?", payload.UserID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound.WithTips("preferencias no configuradas"))
		return
	}
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, pref)
}

// UpdatePreferences upserts the one-to-one preference row.
func UpdatePreferences(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req PreferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar preferencias", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var pref model.UserPreference
	err := database.DB.Where("user_id = ?", payload.UserID).First(&pref).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	pref.UserID = payload.UserID

	if req.AlertsEnabled != nil {
		pref.AlertsEnabled = *req.AlertsEnabled
	} else if pref.ID == 0 {
		pref.AlertsEnabled = true
	}
	if req.PreferredType != "" {
		pref.PreferredType = req.PreferredType
	}
	if req.PreferredCategory != "" {
		pref.PreferredCategory = req.PreferredCategory
	}
	if req.NotifyEnrollment != nil {
		pref.NotifyEnrollment = *req.NotifyEnrollment
	}
	if req.NotifyUpcoming != nil {
		pref.NotifyUpcoming = *req.NotifyUpcoming
	}
	if req.WeeklySummary != nil {
		pref.WeeklySummary = *req.WeeklySummary
	}

	if err := database.DB.Save(&pref).Error; err != nil {
		log.Error("Error al guardar preferencias", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, pref)
}
