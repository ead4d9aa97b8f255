package participation

import (
	"testing"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"
	"student-wellness-system/test"

	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) {
	test.SetupDB(t)
	(&ModuleParticipation{}).Init()
}

func createActivity(t *testing.T, name string) *model.Activity {
	a := &model.Activity{
		Name:     name,
		Category: model.CategoryGroup,
		Type:     "sport",
		Location: "Coliseo",
	}
	require.NoError(t, database.DB.Create(a).Error)
	return a
}

func TestRecordParticipationSameDayIsIdempotent(t *testing.T) {
	setupTest(t)
	a := createActivity(t, "Yoga")
	payload := &jwt.Payload{UserID: 1, Username: "ana", RoleID: model.RoleStudent}

	req := RecordReq{ItemType: model.ItemActivity, ItemID: a.ID, Fecha: "2026-03-10", Hora: "10:00"}

	resp := test.DoRequestAs(t, RecordParticipation, payload, req)
	test.NoError(t, resp)

	resp = test.DoRequestAs(t, RecordParticipation, payload, req)
	require.Equal(t, int32(200), resp.Code)
	require.Equal(t, "Ya registraste tu asistencia para este día", resp.Msg)
	require.Equal(t, true, test.DataMap(t, resp)["duplicate"])

	var count int64
	database.DB.Model(&model.Participation{}).
		Where("user_id = ? AND item_id = ?", payload.UserID, a.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestRecordParticipationDifferentDaysCreateRows(t *testing.T) {
	setupTest(t)
	a := createActivity(t, "Natación")
	payload := &jwt.Payload{UserID: 2, Username: "luis", RoleID: model.RoleStudent}

	test.NoError(t, test.DoRequestAs(t, RecordParticipation, payload,
		RecordReq{ItemType: model.ItemActivity, ItemID: a.ID, Fecha: "2026-03-10"}))
	test.NoError(t, test.DoRequestAs(t, RecordParticipation, payload,
		RecordReq{ItemType: model.ItemActivity, ItemID: a.ID, Fecha: "2026-03-11"}))

	var count int64
	database.DB.Model(&model.Participation{}).
		Where("user_id = ?", payload.UserID).Count(&count)
	require.EqualValues(t, 2, count)
}

func TestRecordParticipationRejectsBadDate(t *testing.T) {
	setupTest(t)
	a := createActivity(t, "Ajedrez")
	payload := &jwt.Payload{UserID: 3, Username: "eva", RoleID: model.RoleStudent}

	resp := test.DoRequestAs(t, RecordParticipation, payload,
		RecordReq{ItemType: model.ItemActivity, ItemID: a.ID, Fecha: "10-03-2026"})
	test.ErrorEqual(t, response.ErrInvalidDate, resp)
}

func TestRecordParticipationToleratesBadTime(t *testing.T) {
	setupTest(t)
	a := createActivity(t, "Teatro")
	payload := &jwt.Payload{UserID: 4, Username: "sam", RoleID: model.RoleStudent}

	resp := test.DoRequestAs(t, RecordParticipation, payload,
		RecordReq{ItemType: model.ItemActivity, ItemID: a.ID, Fecha: "2026-03-10", Hora: "mediodía"})
	test.NoError(t, resp)

	var p model.Participation
	require.NoError(t, database.DB.Where("user_id = ?", payload.UserID).First(&p).Error)
	require.Nil(t, p.AttendanceTime)
}

func TestRecordParticipationUnknownItemType(t *testing.T) {
	setupTest(t)
	payload := &jwt.Payload{UserID: 5, Username: "leo", RoleID: model.RoleStudent}

	resp := test.DoRequestAs(t, RecordParticipation, payload,
		RecordReq{ItemType: "club", ItemID: 1})
	test.ErrorCode(t, response.ErrInvalidRequest, resp)
}

func TestRecordParticipationMissingItem(t *testing.T) {
	setupTest(t)
	payload := &jwt.Payload{UserID: 6, Username: "mar", RoleID: model.RoleStudent}

	resp := test.DoRequestAs(t, RecordParticipation, payload,
		RecordReq{ItemType: model.ItemActivity, ItemID: 999})
	test.ErrorCode(t, response.ErrNotFound, resp)
}

func TestParseAttendanceTime(t *testing.T) {
	short := parseAttendanceTime("10:00")
	require.NotNil(t, short)
	require.Equal(t, "10:00:00", *short)

	full := parseAttendanceTime("10:00:30")
	require.NotNil(t, full)
	require.Equal(t, "10:00:30", *full)

	require.Nil(t, parseAttendanceTime(""))
	require.Nil(t, parseAttendanceTime("25:99"))
}

func TestMyParticipationsDateFilter(t *testing.T) {
	setupTest(t)
	a := createActivity(t, "Pintura")
	payload := &jwt.Payload{UserID: 7, Username: "iris", RoleID: model.RoleStudent}

	for _, fecha := range []string{"2026-03-01", "2026-03-15"} {
		test.NoError(t, test.DoRequestAs(t, RecordParticipation, payload,
			RecordReq{ItemType: model.ItemActivity, ItemID: a.ID, Fecha: fecha}))
	}

	resp := test.DoGet(t, MyParticipations, payload, "from=2026-03-10")
	test.NoError(t, resp)
	rows, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)

	resp = test.DoGet(t, MyParticipations, payload, "from=marzo")
	test.ErrorEqual(t, response.ErrInvalidDate, resp)
}
