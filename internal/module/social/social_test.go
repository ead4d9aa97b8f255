package social

import (
	"fmt"
	"testing"
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"
	"student-wellness-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) {
	test.SetupDB(t)
	(&ModuleSocial{}).Init()
}

func createProject(t *testing.T) *model.SocialProject {
	p := &model.SocialProject{Name: "Donaciones", Published: true}
	require.NoError(t, database.DB.Create(p).Error)
	return p
}

func createEvent(t *testing.T, projectID uint, maxCapacity *uint) *model.SocialEvent {
	e := &model.SocialEvent{
		ProjectID:   projectID,
		Name:        "Jornada de donación",
		EventDate:   time.Now().Add(48 * time.Hour).Unix(),
		MaxCapacity: maxCapacity,
	}
	require.NoError(t, database.DB.Create(e).Error)
	return e
}

func eventParam(id uint) gin.Param {
	return gin.Param{Key: "event_id", Value: fmt.Sprint(id)}
}

func TestEnrollEventIsIdempotent(t *testing.T) {
	setupTest(t)
	project := createProject(t)
	event := createEvent(t, project.ID, nil)
	payload := &jwt.Payload{UserID: 1, Username: "ana", RoleID: model.RoleStudent}

	resp := test.DoRequestAs(t, EnrollEvent, payload, nil, eventParam(event.ID))
	test.NoError(t, resp)

	resp = test.DoRequestAs(t, EnrollEvent, payload, nil, eventParam(event.ID))
	require.Equal(t, int32(200), resp.Code)
	require.Equal(t, "Ya estás inscrito en este evento", resp.Msg)

	var count int64
	database.DB.Model(&model.SocialEventEnrollment{}).Where("event_id = ?", event.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestEnrollEventCapacity(t *testing.T) {
	setupTest(t)
	project := createProject(t)
	capacity := uint(1)
	event := createEvent(t, project.ID, &capacity)

	first := &jwt.Payload{UserID: 1, Username: "ana", RoleID: model.RoleStudent}
	second := &jwt.Payload{UserID: 2, Username: "leo", RoleID: model.RoleStudent}

	test.NoError(t, test.DoRequestAs(t, EnrollEvent, first, nil, eventParam(event.ID)))

	resp := test.DoRequestAs(t, EnrollEvent, second, nil, eventParam(event.ID))
	test.ErrorEqual(t, response.ErrCapacityExceeded, resp)
}

func TestWithdrawEventAllowsReenrollment(t *testing.T) {
	setupTest(t)
	project := createProject(t)
	event := createEvent(t, project.ID, nil)
	payload := &jwt.Payload{UserID: 3, Username: "eva", RoleID: model.RoleStudent}

	test.NoError(t, test.DoRequestAs(t, EnrollEvent, payload, nil, eventParam(event.ID)))
	test.NoError(t, test.DoGet(t, WithdrawEvent, payload, "", eventParam(event.ID)))

	resp := test.DoRequestAs(t, EnrollEvent, payload, nil, eventParam(event.ID))
	test.NoError(t, resp)
	require.NotEqual(t, "Ya estás inscrito en este evento", resp.Msg)
}

func TestDeleteProjectCascades(t *testing.T) {
	setupTest(t)
	project := createProject(t)
	event := createEvent(t, project.ID, nil)
	payload := &jwt.Payload{UserID: 4, Username: "sam", RoleID: model.RoleStudent}

	test.NoError(t, test.DoRequestAs(t, EnrollEvent, payload, nil, eventParam(event.ID)))

	resp := test.DoGet(t, DeleteProject, nil, "", gin.Param{Key: "id", Value: fmt.Sprint(project.ID)})
	test.NoError(t, resp)

	var events int64
	database.DB.Model(&model.SocialEvent{}).Where("project_id = ?", project.ID).Count(&events)
	require.EqualValues(t, 0, events)

	var enrollments int64
	database.DB.Model(&model.SocialEventEnrollment{}).Where("event_id = ?", event.ID).Count(&enrollments)
	require.EqualValues(t, 0, enrollments)
}
