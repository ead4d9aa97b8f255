package model

// Participation item types.
const (
	ItemActivity   = "activity"
	ItemTournament = "tournament"
	ItemEvent      = "event"
)

// Participation is a discrete attendance event, distinct from Enrollment:
// enrolled means signed up, participation means actually attended on a date.
type Participation struct {
	Model
	ItemType       string  `gorm:"type:varchar(20);not null;uniqueIndex:uq_participation_day" json:"item_type"`
	ItemID         uint    `gorm:"not null;uniqueIndex:uq_participation_day" json:"item_id"`
	UserID         uint    `gorm:"not null;uniqueIndex:uq_participation_day" json:"user_id"`
	AttendanceDate string  `gorm:"type:varchar(10);not null;uniqueIndex:uq_participation_day" json:"attendance_date"` // YYYY-MM-DD
	AttendanceTime *string `gorm:"type:varchar(8)" json:"attendance_time"`                                            // null when the submitted time failed to parse
	ScheduleID     *uint   `json:"schedule_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
