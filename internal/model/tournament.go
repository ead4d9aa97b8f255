package model

// Tournament modalities and statuses.
const (
	ModalityTeams      = "teams"
	ModalityIndividual = "individual"
	ModalityMixed      = "mixed"

	StatusUpcoming   = "upcoming"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

type Tournament struct {
	Model
	Name                string `gorm:"type:varchar(100);not null" json:"name"`
	Sport               string `gorm:"type:varchar(50);not null" json:"sport"`
	GenderCategory      string `gorm:"type:varchar(10)" json:"gender_category"` // F / M / mixed
	Modality            string `gorm:"type:varchar(15);not null" json:"modality"`
	StartDate           int64  `gorm:"not null" json:"start_date"`
	MaxParticipants     uint   `gorm:"default:0" json:"max_participants"` // 0 means unlimited
	CurrentParticipants uint   `gorm:"default:0" json:"current_participants"`
	Status              string `gorm:"type:varchar(15);default:upcoming" json:"status"`
}

// Team competes in teams/mixed tournaments; the standings columns are
// maintained transactionally with each score write.
type Team struct {
	Model
	TournamentID uint   `gorm:"not null;uniqueIndex:uq_team_name" json:"tournament_id"`
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex:uq_team_name" json:"name"`
	Points       uint   `gorm:"default:0" json:"points"`
	GoalsFor     uint   `gorm:"default:0" json:"goals_for"`
	GoalsAgainst uint   `gorm:"default:0" json:"goals_against"`
}

// TournamentParticipant competes in individual/mixed tournaments.
type TournamentParticipant struct {
	Model
	TournamentID uint `gorm:"not null;uniqueIndex:uq_tournament_user" json:"tournament_id"`
	UserID       uint `gorm:"not null;uniqueIndex:uq_tournament_user" json:"user_id"`
	Points       uint `gorm:"default:0" json:"points"`
	GoalsFor     uint `gorm:"default:0" json:"goals_for"`
	GoalsAgainst uint `gorm:"default:0" json:"goals_against"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TournamentGame references a schedule slot and two competing sides: team
// ids in teams modality, participant ids in individual modality. Scores stay
// null until the game is played.
type TournamentGame struct {
	Model
	TournamentID uint  `gorm:"not null;index" json:"tournament_id"`
	ScheduleID   uint  `gorm:"not null" json:"schedule_id"`
	HomeTeamID   *uint `json:"home_team_id"`
	AwayTeamID   *uint `json:"away_team_id"`
	HomePlayerID *uint `json:"home_player_id"`
	AwayPlayerID *uint `json:"away_player_id"`
	HomeScore    *uint `json:"home_score"`
	AwayScore    *uint `json:"away_score"`
}

// Played reports whether a score pair has been recorded.
func (g *TournamentGame) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}
