package tournament

import (
	"sort"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// points per result
const (
	pointsWin  = 3
	pointsDraw = 1
)

func resultPoints(scored, conceded uint) int {
	switch {
	case scored > conceded:
		return pointsWin
	case scored == conceded:
		return pointsDraw
	default:
		return 0
	}
}

// applyResult moves a game result into (or out of, when revert is set) the
// standings columns of both sides. Runs inside the score transaction.
func applyResult(tx *gorm.DB, game *model.TournamentGame, homeScore, awayScore uint, revert bool) error {
	if game.HomeTeamID != nil && game.AwayTeamID != nil {
		if err := applyTeamResult(tx, *game.HomeTeamID, homeScore, awayScore, revert); err != nil {
			return err
		}
		return applyTeamResult(tx, *game.AwayTeamID, awayScore, homeScore, revert)
	}
	if game.HomePlayerID != nil && game.AwayPlayerID != nil {
		if err := applyPlayerResult(tx, *game.HomePlayerID, homeScore, awayScore, revert); err != nil {
			return err
		}
		return applyPlayerResult(tx, *game.AwayPlayerID, awayScore, homeScore, revert)
	}
	return nil
}

func applyTeamResult(tx *gorm.DB, teamID uint, scored, conceded uint, revert bool) error {
	var team model.Team
	if err := tx.First(&team, teamID).Error; err != nil {
		return err
	}

	points := resultPoints(scored, conceded)
	if revert {
		team.Points -= uint(points)
		team.GoalsFor -= scored
		team.GoalsAgainst -= conceded
	} else {
		team.Points += uint(points)
		team.GoalsFor += scored
		team.GoalsAgainst += conceded
	}
	return tx.Save(&team).Error
}

func applyPlayerResult(tx *gorm.DB, playerID uint, scored, conceded uint, revert bool) error {
	var participant model.TournamentParticipant
	if err := tx.First(&participant, playerID).Error; err != nil {
		return err
	}

	points := resultPoints(scored, conceded)
	if revert {
		participant.Points -= uint(points)
		participant.GoalsFor -= scored
		participant.GoalsAgainst -= conceded
	} else {
		participant.Points += uint(points)
		participant.GoalsFor += scored
		participant.GoalsAgainst += conceded
	}
	return tx.Save(&participant).Error
}

// StandingRow is one line of the standings table.
type StandingRow struct {
	SideID       uint   `json:"side_id"`
	Name         string `json:"name"`
	Points       uint   `json:"points"`
	GoalsFor     uint   `json:"goals_for"`
	GoalsAgainst uint   `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
}

// Standings returns the ordered table: points first, goal difference as the
// tiebreak.
func Standings(c *gin.Context) {
	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	var rows []StandingRow

	if t.Modality == model.ModalityIndividual || t.Modality == model.ModalityMixed {
		var participants []model.TournamentParticipant
		if err := database.DB.Preload("User").
			Where("tournament_id = ?", t.ID).Find(&participants).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		for _, p := range participants {
			rows = append(rows, StandingRow{
				SideID:       p.ID,
				Name:         p.User.Username,
				Points:       p.Points,
				GoalsFor:     p.GoalsFor,
				GoalsAgainst: p.GoalsAgainst,
				GoalDiff:     int(p.GoalsFor) - int(p.GoalsAgainst),
			})
		}
	}

	if t.Modality == model.ModalityTeams || t.Modality == model.ModalityMixed {
		var teams []model.Team
		if err := database.DB.Where("tournament_id = ?", t.ID).Find(&teams).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		for _, team := range teams {
			rows = append(rows, StandingRow{
				SideID:       team.ID,
				Name:         team.Name,
				Points:       team.Points,
				GoalsFor:     team.GoalsFor,
				GoalsAgainst: team.GoalsAgainst,
				GoalDiff:     int(team.GoalsFor) - int(team.GoalsAgainst),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GoalDiff > rows[j].GoalDiff
	})

	response.Success(c, rows)
}
