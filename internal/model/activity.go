package model

// Activity categories and types.
const (
	CategoryGroup      = "group"
	CategoryIndividual = "individual"
)

type Activity struct {
	Model
	Name                 string `gorm:"type:varchar(100);not null" json:"name"`
	Description          string `gorm:"type:varchar(255)" json:"description"`
	Category             string `gorm:"type:varchar(30);not null" json:"category"` // group / individual
	Type                 string `gorm:"type:varchar(30);not null" json:"type"`     // sport / art / psychology / ...
	Location             string `gorm:"type:varchar(100);not null" json:"location"`
	Published            bool   `gorm:"default:false" json:"published"`
	RequiresRegistration bool   `gorm:"default:false" json:"requires_registration"`
	MaxCapacity          *uint  `json:"max_capacity"` // required when RequiresRegistration
	CoverURL             string `gorm:"type:varchar(255)" json:"cover_url"`
}

// Schedule is a weekly slot. ActivityID is null for standalone slots
// referenced by tournament games.
type Schedule struct {
	Model
	ActivityID *uint  `gorm:"index" json:"activity_id"`
	Day        string `gorm:"type:varchar(10);not null" json:"day"` // lowercase weekday name
	StartTime  string `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime    string `gorm:"type:varchar(5);not null" json:"end_time"`
}

type Enrollment struct {
	Model
	UserID       uint  `gorm:"not null;uniqueIndex:uq_enrollment_user_activity" json:"user_id"`
	ActivityID   uint  `gorm:"not null;uniqueIndex:uq_enrollment_user_activity" json:"activity_id"`
	ScheduleID   *uint `json:"schedule_id"`
	Confirmed    bool  `gorm:"default:false" json:"confirmed"`
	RegisteredAt int64 `gorm:"not null" json:"registered_at"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Activity Activity `gorm:"foreignKey:ActivityID" json:"-"`
}

type ActivityReview struct {
	Model
	ActivityID uint   `gorm:"not null;index" json:"activity_id"`
	UserID     uint   `gorm:"not null" json:"user_id"`
	Rating     int    `gorm:"not null" json:"rating"` // 1-5, validated at request level
	Comment    string `gorm:"type:varchar(500)" json:"comment"`
	Read       bool   `gorm:"default:false" json:"read"` // staff triage flag
}
