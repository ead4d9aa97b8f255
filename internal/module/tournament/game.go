package tournament

import (
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GameCreateReq schedules a game between two sides. Which pair of fields is
// used depends on the tournament modality.
type GameCreateReq struct {
	ScheduleID   uint  `json:"schedule_id" binding:"required"`
	HomeTeamID   *uint `json:"home_team_id"`
	AwayTeamID   *uint `json:"away_team_id"`
	HomePlayerID *uint `json:"home_player_id"`
	AwayPlayerID *uint `json:"away_player_id"`
}

// CreateGame validates both sides exist, belong to the tournament and are
// distinct, then stores the game without a score.
func CreateGame(c *gin.Context) {
	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	var req GameCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar el partido", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var schedule model.Schedule
	if err := database.DB.First(&schedule, req.ScheduleID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("horario no encontrado"))
		return
	}

	teamsGame := req.HomeTeamID != nil && req.AwayTeamID != nil
	playersGame := req.HomePlayerID != nil && req.AwayPlayerID != nil

	switch t.Modality {
	case model.ModalityTeams:
		if !teamsGame {
			response.Fail(c, response.ErrInvalidRequest.WithTips("se requieren dos equipos"))
			return
		}
	case model.ModalityIndividual:
		if !playersGame {
			response.Fail(c, response.ErrInvalidRequest.WithTips("se requieren dos participantes"))
			return
		}
	case model.ModalityMixed:
		if !teamsGame && !playersGame {
			response.Fail(c, response.ErrInvalidRequest.WithTips("se requieren dos equipos o dos participantes"))
			return
		}
	}

	if teamsGame {
		// a side cannot play itself
		if *req.HomeTeamID == *req.AwayTeamID {
			response.Fail(c, response.ErrInvalidRequest.WithTips("un equipo no puede jugar contra sí mismo"))
			return
		}
		for _, teamID := range []uint{*req.HomeTeamID, *req.AwayTeamID} {
			var team model.Team
			if err := database.DB.Where("id = ? AND tournament_id = ?", teamID, t.ID).
				First(&team).Error; err != nil {
				response.Fail(c, response.ErrNotFound.WithTips("equipo no encontrado en este torneo"))
				return
			}
		}
	} else {
		if *req.HomePlayerID == *req.AwayPlayerID {
			response.Fail(c, response.ErrInvalidRequest.WithTips("un participante no puede jugar contra sí mismo"))
			return
		}
		for _, playerID := range []uint{*req.HomePlayerID, *req.AwayPlayerID} {
			var participant model.TournamentParticipant
			if err := database.DB.Where("id = ? AND tournament_id = ?", playerID, t.ID).
				First(&participant).Error; err != nil {
				response.Fail(c, response.ErrNotFound.WithTips("participante no encontrado en este torneo"))
				return
			}
		}
	}

	game := model.TournamentGame{
		TournamentID: t.ID,
		ScheduleID:   req.ScheduleID,
	}
	if teamsGame {
		game.HomeTeamID = req.HomeTeamID
		game.AwayTeamID = req.AwayTeamID
	} else {
		game.HomePlayerID = req.HomePlayerID
		game.AwayPlayerID = req.AwayPlayerID
	}

	if err := database.DB.Create(&game).Error; err != nil {
		log.Error("Error al crear el partido", "error", err, "tournament_id", t.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, game)
}

// ScoreReq records the final score of a game.
type ScoreReq struct {
	HomeScore *uint `json:"home_score" binding:"required"`
	AwayScore *uint `json:"away_score" binding:"required"`
}

// RecordScore saves a game score and updates the standings in the same
// transaction. Re-saving a score first reverts the previous result, so the
// standings stay consistent per game.
func RecordScore(c *gin.Context) {
	gameID := c.Param("game_id")
	if gameID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("el ID de partido no puede estar vacío"))
		return
	}

	var game model.TournamentGame
	err := database.DB.First(&game, "id = ?", gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound.WithTips("partido no encontrado"))
		return
	}
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var req ScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if game.Played() {
			if err := applyResult(tx, &game, *game.HomeScore, *game.AwayScore, true); err != nil {
				return err
			}
		}

		game.HomeScore = req.HomeScore
		game.AwayScore = req.AwayScore
		if err := tx.Save(&game).Error; err != nil {
			return err
		}

		return applyResult(tx, &game, *req.HomeScore, *req.AwayScore, false)
	})

	if txErr != nil {
		log.Error("Error al registrar el marcador", "error", txErr, "game_id", game.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(txErr))
		return
	}

	log.Info("Marcador registrado", "game_id", game.ID,
		"home_score", *req.HomeScore, "away_score", *req.AwayScore)

	response.Success(c, game)
}

// ListGames lists the games of a tournament.
func ListGames(c *gin.Context) {
	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	var games []model.TournamentGame
	if err := database.DB.Where("tournament_id = ?", t.ID).Find(&games).Error; err != nil {
		log.Error("Error al listar partidos", "error", err, "tournament_id", t.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, games)
}
