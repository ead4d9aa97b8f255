package alerts

import (
	"fmt"
	"time"

	"student-wellness-system/internal/global/context"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maxAlerts caps the nudges shown per request.
const maxAlerts = 3

// upcomingWindow is how far ahead the upcoming-events nudge looks.
const upcomingWindow = 3 * 24 * time.Hour

// Generate derives the nudges from the preference flags and the two
// activity counters, in fixed priority order, truncated to maxAlerts. A nil
// pref means the user never configured preferences.
func Generate(pref *model.UserPreference, enrollmentCount, upcomingEvents int64) []string {
	var alerts []string

	if pref == nil {
		alerts = append(alerts, "Configura tus preferencias para recibir recomendaciones personalizadas.")
	} else if !pref.AlertsEnabled {
		alerts = append(alerts, "Tienes las alertas desactivadas; actívalas para no perderte novedades.")
	} else {
		if pref.PreferredType != "" {
			alerts = append(alerts, fmt.Sprintf("Hay actividades de tipo %q que podrían interesarte.", pref.PreferredType))
		}
		if pref.PreferredCategory != "" {
			alerts = append(alerts, fmt.Sprintf("Revisa las actividades de la categoría %q de esta semana.", pref.PreferredCategory))
		}
	}

	if enrollmentCount <= 1 {
		alerts = append(alerts, "Aún tienes pocas inscripciones; explora el catálogo de actividades.")
	}
	if upcomingEvents > 0 {
		alerts = append(alerts, fmt.Sprintf("Tienes %d evento(s) en los próximos 3 días.", upcomingEvents))
	}

	if len(alerts) == 0 {
		return []string{"¡Todo al día! No tienes avisos pendientes."}
	}
	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts
}

// MyAlerts returns the personalized nudges for the logged-in user.
func MyAlerts(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var pref *model.UserPreference
	var stored model.UserPreference
	err := database.DB.Where("user_id = ?", payload.UserID).First(&stored).Error
	switch {
	case err == nil:
		pref = &stored
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error("Error al consultar preferencias", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var enrollmentCount int64
	if err := database.DB.Model(&model.Enrollment{}).
		Where("user_id = ?", payload.UserID).Count(&enrollmentCount).Error; err != nil {
		log.Error("Error al contar inscripciones", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	now := time.Now()
	var upcomingEvents int64
	if err := database.DB.Model(&model.SocialEventEnrollment{}).
		Joins("JOIN social_event ON social_event.id = social_event_enrollment.event_id").
		Where("social_event_enrollment.user_id = ?", payload.UserID).
		Where("social_event.event_date BETWEEN ? AND ?",
			now.Unix(), now.Add(upcomingWindow).Unix()).
		Count(&upcomingEvents).Error; err != nil {
		log.Error("Error al contar eventos próximos", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"alerts": Generate(pref, enrollmentCount, upcomingEvents),
	})
}
