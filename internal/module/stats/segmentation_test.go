package stats

import (
	"testing"
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/model"
	"student-wellness-system/test"

	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) {
	test.SetupDB(t)
	(&ModuleStats{}).Init()
}

func createFaculty(t *testing.T, name string) *model.Faculty {
	f := &model.Faculty{Name: name}
	require.NoError(t, database.DB.Create(f).Error)
	return f
}

func createUser(t *testing.T, username, gender string, facultyID *uint) *model.User {
	u := &model.User{
		Username:       username,
		IdentityNumber: "id-" + username,
		Password:       "hash",
		Gender:         gender,
		FacultyID:      facultyID,
	}
	require.NoError(t, database.DB.Create(u).Error)
	return u
}

func createActivity(t *testing.T, name, activityType string) *model.Activity {
	a := &model.Activity{
		Name:     name,
		Category: model.CategoryGroup,
		Type:     activityType,
		Location: "Coliseo",
	}
	require.NoError(t, database.DB.Create(a).Error)
	return a
}

func enroll(t *testing.T, userID, activityID uint) *model.Enrollment {
	e := &model.Enrollment{UserID: userID, ActivityID: activityID, RegisteredAt: time.Now().Unix()}
	require.NoError(t, database.DB.Create(e).Error)
	return e
}

func attend(t *testing.T, userID, activityID uint, date string) {
	p := &model.Participation{
		ItemType:       model.ItemActivity,
		ItemID:         activityID,
		UserID:         userID,
		AttendanceDate: date,
	}
	require.NoError(t, database.DB.Create(p).Error)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func TestSegmentationExcludesPrivilegedOperators(t *testing.T) {
	setupTest(t)

	cadi := createFaculty(t, model.CADIFacultyName)
	ing := createFaculty(t, "Ingeniería")

	student := createUser(t, "ana", "F", &ing.ID)
	staff := createUser(t, "staff", "M", nil)
	require.NoError(t, database.DB.Model(staff).Update("is_staff", true).Error)
	cadiMember := createUser(t, "cadi", "F", &cadi.ID)

	a := createActivity(t, "Yoga", "sport")
	enroll(t, student.ID, a.ID)
	enroll(t, staff.ID, a.ID)
	enroll(t, cadiMember.ID, a.ID)
	attend(t, student.ID, a.ID, today())
	attend(t, staff.ID, a.ID, today())

	rows, err := BuildSegmentation(Filters{GroupBy: GroupByActivity}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Yoga", rows[0].Key)
	require.Equal(t, 1, rows[0].EnrolledCount)
	require.Equal(t, 1, rows[0].ParticipantCount)
	require.InDelta(t, 1.0, rows[0].ParticipationRate, 0.0001)
}

func TestSegmentationGroupByFaculty(t *testing.T) {
	setupTest(t)

	ing := createFaculty(t, "Ingeniería")
	withFaculty := createUser(t, "ana", "F", &ing.ID)
	without := createUser(t, "leo", "M", nil)

	a := createActivity(t, "Natación", "sport")
	enroll(t, withFaculty.ID, a.ID)
	enroll(t, without.ID, a.ID)

	rows, err := BuildSegmentation(Filters{GroupBy: GroupByFaculty}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	keys := map[string]int{}
	for _, r := range rows {
		keys[r.Key] = r.EnrolledCount
	}
	require.Equal(t, 1, keys["Ingeniería"])
	require.Equal(t, 1, keys["Sin facultad"])
}

func TestSegmentationGroupByGenderFallback(t *testing.T) {
	setupTest(t)

	u := createUser(t, "ana", "", nil)
	a := createActivity(t, "Teatro", "art")
	enroll(t, u.ID, a.ID)

	rows, err := BuildSegmentation(Filters{GroupBy: GroupByGender}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Sin especificar", rows[0].Key)
}

func TestSegmentationPeriodFilter(t *testing.T) {
	setupTest(t)

	old := createUser(t, "viejo", "M", nil)
	recent := createUser(t, "nuevo", "F", nil)
	a := createActivity(t, "Pintura", "art")

	oldEnrollment := enroll(t, old.ID, a.ID)
	require.NoError(t, database.DB.Model(&model.Enrollment{}).
		Where("id = ?", oldEnrollment.ID).
		Update("created_at", time.Now().AddDate(0, -2, 0)).Error)
	enroll(t, recent.ID, a.ID)

	attend(t, old.ID, a.ID, time.Now().AddDate(0, -2, 0).Format("2006-01-02"))
	attend(t, recent.ID, a.ID, today())

	rows, err := BuildSegmentation(Filters{GroupBy: GroupByActivity, PeriodFilter: PeriodWeekly}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].EnrolledCount)
	require.Equal(t, 1, rows[0].ParticipantCount)
	require.Equal(t, "Semanal", rows[0].Period)

	// no period filter sees both
	rows, err = BuildSegmentation(Filters{GroupBy: GroupByActivity}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 2, rows[0].EnrolledCount)
	require.Equal(t, 2, rows[0].ParticipantCount)
}

func TestSegmentationActivityTypeFilter(t *testing.T) {
	setupTest(t)

	u := createUser(t, "ana", "F", nil)
	sport := createActivity(t, "Fútbol", "sport")
	art := createActivity(t, "Danza", "art")
	enroll(t, u.ID, sport.ID)
	enroll(t, u.ID, art.ID)

	rows, err := BuildSegmentation(Filters{GroupBy: GroupByActivity, ActivityType: "sport"}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Fútbol", rows[0].Key)
}

func TestSegmentationUserTypeFilter(t *testing.T) {
	setupTest(t)

	ing := createFaculty(t, "Ingeniería")
	student := createUser(t, "ana", "F", &ing.ID)
	external := createUser(t, "ext", "M", nil)

	a := createActivity(t, "Yoga", "sport")
	enroll(t, student.ID, a.ID)
	enroll(t, external.ID, a.ID)

	rows, err := BuildSegmentation(Filters{GroupBy: GroupByActivity, UserType: "student"}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].EnrolledCount)

	rows, err = BuildSegmentation(Filters{GroupBy: GroupByActivity, UserType: "other"}, time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].EnrolledCount)
}
