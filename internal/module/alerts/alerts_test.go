package alerts

import (
	"testing"
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/model"
	"student-wellness-system/test"

	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) {
	test.SetupDB(t)
	(&ModuleAlerts{}).Init()
}

func TestGenerateWithoutPreferences(t *testing.T) {
	alerts := Generate(nil, 0, 0)
	require.Len(t, alerts, 2)
	require.Equal(t, "Configura tus preferencias para recibir recomendaciones personalizadas.", alerts[0])
	require.Equal(t, "Aún tienes pocas inscripciones; explora el catálogo de actividades.", alerts[1])
}

func TestGenerateAlertsDisabled(t *testing.T) {
	pref := &model.UserPreference{AlertsEnabled: false, PreferredType: "sport"}
	alerts := Generate(pref, 5, 0)
	require.Len(t, alerts, 1)
	require.Equal(t, "Tienes las alertas desactivadas; actívalas para no perderte novedades.", alerts[0])
}

func TestGenerateCapsAtThree(t *testing.T) {
	pref := &model.UserPreference{
		AlertsEnabled:     true,
		PreferredType:     "sport",
		PreferredCategory: "group",
	}
	alerts := Generate(pref, 0, 2)
	require.Len(t, alerts, 3)
	require.Contains(t, alerts[0], "sport")
	require.Contains(t, alerts[1], "group")
	require.Equal(t, "Aún tienes pocas inscripciones; explora el catálogo de actividades.", alerts[2])
}

func TestGenerateUpcomingEvents(t *testing.T) {
	pref := &model.UserPreference{AlertsEnabled: true}
	alerts := Generate(pref, 5, 2)
	require.Len(t, alerts, 1)
	require.Contains(t, alerts[0], "2 evento(s)")
}

func TestGenerateAllCaughtUp(t *testing.T) {
	pref := &model.UserPreference{AlertsEnabled: true}
	alerts := Generate(pref, 5, 0)
	require.Len(t, alerts, 1)
	require.Equal(t, "¡Todo al día! No tienes avisos pendientes.", alerts[0])
}

func TestMyAlerts(t *testing.T) {
	setupTest(t)
	payload := &jwt.Payload{UserID: 1, Username: "ana", RoleID: model.RoleStudent}

	resp := test.DoGet(t, MyAlerts, payload, "")
	test.NoError(t, resp)
	alerts, ok := test.DataMap(t, resp)["alerts"].([]any)
	require.True(t, ok)
	require.Len(t, alerts, 2)
}

func TestMyAlertsCountsUpcomingEvents(t *testing.T) {
	setupTest(t)
	payload := &jwt.Payload{UserID: 2, Username: "leo", RoleID: model.RoleStudent}

	require.NoError(t, database.DB.Create(&model.UserPreference{
		UserID:        payload.UserID,
		AlertsEnabled: true,
	}).Error)

	project := model.SocialProject{Name: "Donaciones", Published: true}
	require.NoError(t, database.DB.Create(&project).Error)
	event := model.SocialEvent{
		ProjectID: project.ID,
		Name:      "Jornada de donación",
		EventDate: time.Now().Add(24 * time.Hour).Unix(),
	}
	require.NoError(t, database.DB.Create(&event).Error)
	require.NoError(t, database.DB.Create(&model.SocialEventEnrollment{
		UserID:  payload.UserID,
		EventID: event.ID,
	}).Error)

	resp := test.DoGet(t, MyAlerts, payload, "")
	test.NoError(t, resp)
	alerts, ok := test.DataMap(t, resp)["alerts"].([]any)
	require.True(t, ok)

	var found bool
	for _, a := range alerts {
		if s, _ := a.(string); s == "Tienes 1 evento(s) en los próximos 3 días." {
			found = true
		}
	}
	require.True(t, found)
}
