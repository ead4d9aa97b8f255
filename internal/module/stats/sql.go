package stats

import (
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/model"

	"gorm.io/gorm"
)

// Filters are the segmentation query parameters shared by the JSON view and
// the exports, so both always see the same row set.
type Filters struct {
	GroupBy      string `form:"group_by"`
	ActivityType string `form:"activity_type"`
	PeriodFilter string `form:"period_filter"`
	UserType     string `form:"user_type"` // student / other
	Schedule     string `form:"schedule"`  // schedule day name
}

// enrollmentRow is one enrollment joined with its user and activity, the
// unit the segmentation buckets are built from.
type enrollmentRow struct {
	UserID       uint
	ActivityID   uint
	ActivityName string
	FacultyName  string
	Gender       string
}

// participationRow is one attendance record joined the same way.
type participationRow struct {
	UserID       uint
	ActivityID   uint
	ActivityName string
	FacultyName  string
	Gender       string
}

// staffUserIDs returns every user the single privileged-operator predicate
// matches: role, staff/superuser flags or CADI faculty membership. These
// users never appear in segmentation populations.
func staffUserIDs(db *gorm.DB) ([]uint, error) {
	var cadiIDs []uint
	db.Model(&model.Faculty{}).Where("name = ?", model.CADIFacultyName).Pluck("id", &cadiIDs)

	var cadiID uint
	if len(cadiIDs) > 0 {
		cadiID = cadiIDs[0]
	}

	var ids []uint
	query := db.Model(&model.User{}).
		Where("role_id >= ? OR is_staff = ? OR is_superuser = ?", model.RoleCADI, true, true)
	if cadiID != 0 {
		query = db.Model(&model.User{}).
			Where("role_id >= ? OR is_staff = ? OR is_superuser = ? OR faculty_id = ?",
				model.RoleCADI, true, true, cadiID)
	}
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func applyUserFilters(query *gorm.DB, f Filters, staffIDs []uint) *gorm.DB {
	if len(staffIDs) > 0 {
		query = query.Where("user.id NOT IN ?", staffIDs)
	}
	switch f.UserType {
	case "student":
		query = query.Where("user.faculty_id IS NOT NULL")
	case "other":
		query = query.Where("user.faculty_id IS NULL")
	}
	return query
}

// selectEnrollments loads the filtered enrollment rows.
func selectEnrollments(f Filters, since time.Time, active bool) ([]enrollmentRow, error) {
	staffIDs, err := staffUserIDs(database.DB)
	if err != nil {
		return nil, err
	}

	query := database.DB.Table("enrollment").
		Select(`enrollment.user_id,
			enrollment.activity_id,
			activity.name AS activity_name,
			COALESCE(faculty.name, '') AS faculty_name,
			user.gender AS gender`).
		Joins("JOIN activity ON activity.id = enrollment.activity_id AND activity.deleted_at IS NULL").
		Joins("JOIN user ON user.id = enrollment.user_id AND user.deleted_at IS NULL").
		Joins("LEFT JOIN faculty ON faculty.id = user.faculty_id").
		Where("enrollment.deleted_at IS NULL")

	query = applyUserFilters(query, f, staffIDs)

	if f.ActivityType != "" {
		query = query.Where("activity.type = ?", f.ActivityType)
	}
	if active {
		query = query.Where("enrollment.created_at >= ?", since)
	}
	if f.Schedule != "" {
		query = query.
			Joins("JOIN schedule ON schedule.id = enrollment.schedule_id").
			Where("schedule.day = ?", f.Schedule)
	}

	var rows []enrollmentRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// selectParticipations loads the filtered attendance rows for activities.
func selectParticipations(f Filters, since time.Time, active bool) ([]participationRow, error) {
	staffIDs, err := staffUserIDs(database.DB)
	if err != nil {
		return nil, err
	}

	query := database.DB.Table("participation").
		Select(`participation.user_id,
			participation.item_id AS activity_id,
			activity.name AS activity_name,
			COALESCE(faculty.name, '') AS faculty_name,
			user.gender AS gender`).
		Joins("JOIN activity ON activity.id = participation.item_id AND activity.deleted_at IS NULL").
		Joins("JOIN user ON user.id = participation.user_id AND user.deleted_at IS NULL").
		Joins("LEFT JOIN faculty ON faculty.id = user.faculty_id").
		Where("participation.deleted_at IS NULL").
		Where("participation.item_type = ?", model.ItemActivity)

	query = applyUserFilters(query, f, staffIDs)

	if f.ActivityType != "" {
		query = query.Where("activity.type = ?", f.ActivityType)
	}
	if active {
		query = query.Where("participation.attendance_date >= ?", since.Format("2006-01-02"))
	}
	if f.Schedule != "" {
		query = query.
			Joins("JOIN schedule ON schedule.id = participation.schedule_id").
			Where("schedule.day = ?", f.Schedule)
	}

	var rows []participationRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
