package stats

import (
	"fmt"
	"testing"

	"student-wellness-system/internal/global/response"
	"student-wellness-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestTopActivitiesByGender(t *testing.T) {
	setupTest(t)

	ing := createFaculty(t, "Ingeniería")
	ana := createUser(t, "ana", "F", &ing.ID)
	leo := createUser(t, "leo", "M", nil)

	yoga := createActivity(t, "Yoga", "sport")
	futbol := createActivity(t, "Fútbol", "sport")
	enroll(t, ana.ID, yoga.ID)
	enroll(t, ana.ID, futbol.ID)
	enroll(t, leo.ID, yoga.ID)

	resp := test.DoGet(t, TopActivities, nil, "by=gender")
	test.NoError(t, resp)

	data := test.DataMap(t, resp)
	female, ok := data["F"].([]any)
	require.True(t, ok)
	require.Len(t, female, 2)
	male, ok := data["M"].([]any)
	require.True(t, ok)
	require.Len(t, male, 1)
	require.Equal(t, "Yoga", male[0].(map[string]any)["activity_name"])
}

func TestTopActivitiesRejectsUnknownDimension(t *testing.T) {
	setupTest(t)

	resp := test.DoGet(t, TopActivities, nil, "by=carrera")
	test.ErrorCode(t, response.ErrInvalidRequest, resp)
}

func TestActivityDistribution(t *testing.T) {
	setupTest(t)

	ing := createFaculty(t, "Ingeniería")
	ana := createUser(t, "ana", "F", &ing.ID)
	leo := createUser(t, "leo", "M", nil)

	yoga := createActivity(t, "Yoga", "sport")
	enroll(t, ana.ID, yoga.ID)
	enroll(t, leo.ID, yoga.ID)

	resp := test.DoGet(t, ActivityDistribution, nil, "",
		gin.Param{Key: "id", Value: fmt.Sprint(yoga.ID)})
	test.NoError(t, resp)

	data := test.DataMap(t, resp)
	require.EqualValues(t, 2, data["total"])

	byGender, ok := data["by_gender"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, byGender["F"])
	require.EqualValues(t, 1, byGender["M"])

	byFaculty, ok := data["by_faculty"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, byFaculty["Ingeniería"])
	require.EqualValues(t, 1, byFaculty["Sin facultad"])
}
