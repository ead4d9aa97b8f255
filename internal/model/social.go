package model

type SocialProject struct {
	Model
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	Published   bool   `gorm:"default:false" json:"published"`
}

// SocialEvent is a one-off dated event under a project.
type SocialEvent struct {
	Model
	ProjectID   uint   `gorm:"not null;index" json:"project_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Location    string `gorm:"type:varchar(100)" json:"location"`
	EventDate   int64  `gorm:"not null" json:"event_date"`
	MaxCapacity *uint  `json:"max_capacity"`

	Project SocialProject `gorm:"foreignKey:ProjectID" json:"-"`
}

type SocialEventEnrollment struct {
	Model
	UserID  uint `gorm:"not null;uniqueIndex:uq_event_enrollment" json:"user_id"`
	EventID uint `gorm:"not null;uniqueIndex:uq_event_enrollment" json:"event_id"`

	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Event SocialEvent `gorm:"foreignKey:EventID" json:"-"`
}
