package model

// Role levels carried in the JWT and checked by the auth middleware.
const (
	RoleStudent = 0
	RoleCADI    = 1
	RoleAdmin   = 2
)

// CADIFacultyName is the reserved faculty marking staff accounts.
const CADIFacultyName = "CADI"

type User struct {
	Model
	Username       string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	FirstName      string `gorm:"type:varchar(50)" json:"first_name"`
	LastName       string `gorm:"type:varchar(50)" json:"last_name"`
	Email          string `gorm:"type:varchar(100)" json:"email"`
	Gender         string `gorm:"type:varchar(1)" json:"gender"` // F / M / O
	IdentityNumber string `gorm:"type:varchar(20);uniqueIndex;not null" json:"identity_number"`
	Password       string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID         int    `gorm:"default:0;not null" json:"role_id"`
	IsStaff        bool   `gorm:"default:false" json:"is_staff"`
	IsSuperuser    bool   `gorm:"default:false" json:"is_superuser"`
	FacultyID      *uint  `json:"faculty_id"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
}

// IsPrivilegedOperator is the single staff predicate: role, staff flags or
// CADI faculty membership all count. Used by the auth gates and by the
// segmentation queries to exclude staff from student populations.
func (u *User) IsPrivilegedOperator() bool {
	if u.RoleID >= RoleCADI || u.IsStaff || u.IsSuperuser {
		return true
	}
	return u.Faculty != nil && u.Faculty.Name == CADIFacultyName
}

type Faculty struct {
	Model
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// UserPreference holds the interest flags driving alert generation,
// one row per user.
type UserPreference struct {
	Model
	UserID            uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	AlertsEnabled     bool   `gorm:"default:true" json:"alerts_enabled"`
	PreferredType     string `gorm:"type:varchar(30)" json:"preferred_type"`     // sport / art / psychology / ...
	PreferredCategory string `gorm:"type:varchar(30)" json:"preferred_category"` // group / individual
	NotifyEnrollment  bool   `gorm:"default:true" json:"notify_enrollment"`
	NotifyUpcoming    bool   `gorm:"default:true" json:"notify_upcoming"`
	WeeklySummary     bool   `gorm:"default:false" json:"weekly_summary"`
}
