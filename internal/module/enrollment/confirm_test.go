package enrollment

import (
	"testing"
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"
	"student-wellness-system/test"

	"github.com/stretchr/testify/require"
)

func createEnrollment(t *testing.T, userID, activityID uint) *model.Enrollment {
	e := &model.Enrollment{
		UserID:       userID,
		ActivityID:   activityID,
		RegisteredAt: time.Now().Unix(),
	}
	require.NoError(t, database.DB.Create(e).Error)
	return e
}

func TestConfirmEnrollment(t *testing.T) {
	setupTest(t)
	capacity := uint(10)
	u := createUser(t, "ana")
	a := createActivity(t, "Yoga", &capacity)
	e := createEnrollment(t, u.ID, a.ID)

	token, err := jwt.CreateConfirmToken(e.ID, u.ID)
	require.NoError(t, err)

	resp := test.DoGet(t, ConfirmEnrollment, nil, "token="+token)
	test.NoError(t, resp)
	require.Equal(t, true, test.DataMap(t, resp)["confirmed"])

	var stored model.Enrollment
	require.NoError(t, database.DB.First(&stored, e.ID).Error)
	require.True(t, stored.Confirmed)

	// confirming again is harmless
	resp = test.DoGet(t, ConfirmEnrollment, nil, "token="+token)
	require.Equal(t, int32(200), resp.Code)
	require.Equal(t, "La inscripción ya estaba confirmada", resp.Msg)
}

func TestConfirmEnrollmentRejectsTamperedToken(t *testing.T) {
	setupTest(t)
	u := createUser(t, "eva")
	a := createActivity(t, "Danza", nil)
	e := createEnrollment(t, u.ID, a.ID)

	token, err := jwt.CreateConfirmToken(e.ID, u.ID)
	require.NoError(t, err)

	resp := test.DoGet(t, ConfirmEnrollment, nil, "token="+token+"x")
	test.ErrorEqual(t, response.ErrConfirmToken, resp)

	var stored model.Enrollment
	require.NoError(t, database.DB.First(&stored, e.ID).Error)
	require.False(t, stored.Confirmed)
}

func TestConfirmEnrollmentMissingToken(t *testing.T) {
	setupTest(t)

	resp := test.DoGet(t, ConfirmEnrollment, nil, "")
	test.ErrorCode(t, response.ErrInvalidRequest, resp)
}

func TestConfirmEnrollmentUnknownEnrollment(t *testing.T) {
	setupTest(t)

	token, err := jwt.CreateConfirmToken(999, 999)
	require.NoError(t, err)

	resp := test.DoGet(t, ConfirmEnrollment, nil, "token="+token)
	test.ErrorCode(t, response.ErrNotFound, resp)
}
