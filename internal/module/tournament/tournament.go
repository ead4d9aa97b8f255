package tournament

import (
	"student-wellness-system/internal/global/context"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TournamentCreateReq is the staff request to create a tournament.
type TournamentCreateReq struct {
	Name            string `json:"name" binding:"required"`
	Sport           string `json:"sport" binding:"required"`
	GenderCategory  string `json:"gender_category" binding:"omitempty,oneof=F M mixed"`
	Modality        string `json:"modality" binding:"required,oneof=teams individual mixed"`
	StartDate       int64  `json:"start_date" binding:"required"`
	MaxParticipants uint   `json:"max_participants"`
}

// TournamentUpdateReq supports partial updates.
type TournamentUpdateReq struct {
	Name            *string `json:"name"`
	Sport           *string `json:"sport"`
	GenderCategory  *string `json:"gender_category"`
	StartDate       *int64  `json:"start_date"`
	MaxParticipants *uint   `json:"max_participants"`
	Status          *string `json:"status" binding:"omitempty,oneof=upcoming in_progress finished"`
}

func CreateTournament(c *gin.Context) {
	var req TournamentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la solicitud de torneo", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	tournament := model.Tournament{
		Name:            req.Name,
		Sport:           req.Sport,
		GenderCategory:  req.GenderCategory,
		Modality:        req.Modality,
		StartDate:       req.StartDate,
		MaxParticipants: req.MaxParticipants,
		Status:          model.StatusUpcoming,
	}

	if err := database.DB.Create(&tournament).Error; err != nil {
		log.Error("Error al crear el torneo", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Torneo creado", "name", req.Name, "tournament_id", tournament.ID)

	response.Success(c, gin.H{
		"tournament_id": tournament.ID,
	})
}

func ListTournaments(c *gin.Context) {
	query := database.DB.Model(&model.Tournament{})

	if sport := c.Query("sport"); sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tournaments []model.Tournament
	if err := query.Order("start_date").Find(&tournaments).Error; err != nil {
		log.Error("Error al listar torneos", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, tournaments)
}

func GetTournament(c *gin.Context) {
	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	var teams []model.Team
	database.DB.Where("tournament_id = ?", t.ID).Find(&teams)

	var participants []model.TournamentParticipant
	database.DB.Where("tournament_id = ?", t.ID).Find(&participants)

	response.Success(c, gin.H{
		"tournament":   t,
		"teams":        teams,
		"participants": participants,
	})
}

func UpdateTournament(c *gin.Context) {
	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	var req TournamentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Sport != nil {
		t.Sport = *req.Sport
	}
	if req.GenderCategory != nil {
		t.GenderCategory = *req.GenderCategory
	}
	if req.StartDate != nil {
		t.StartDate = *req.StartDate
	}
	if req.MaxParticipants != nil {
		t.MaxParticipants = *req.MaxParticipants
	}
	if req.Status != nil {
		t.Status = *req.Status
	}

	if err := database.DB.Save(t).Error; err != nil {
		log.Error("Error al actualizar el torneo", "error", err, "tournament_id", t.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, t)
}

func DeleteTournament(c *gin.Context) {
	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", t.ID).Delete(&model.Team{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tournament_id = ?", t.ID).Delete(&model.TournamentParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tournament_id = ?", t.ID).Delete(&model.TournamentGame{}).Error; err != nil {
			return err
		}
		return tx.Delete(t).Error
	}); err != nil {
		log.Error("Error al eliminar el torneo", "error", err, "tournament_id", t.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"tournament_id": t.ID})
}

// TeamReq registers a team in a teams/mixed tournament.
type TeamReq struct {
	Name string `json:"name" binding:"required"`
}

// RegisterTeam creates a team. The participant counter moves inside the
// same transaction as the insert so it cannot drift from the real count.
func RegisterTeam(c *gin.Context) {
	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	if t.Modality == model.ModalityIndividual {
		response.Fail(c, response.ErrInvalidRequest.WithTips("este torneo es individual, no admite equipos"))
		return
	}

	var req TeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	team := model.Team{
		TournamentID: t.ID,
		Name:         req.Name,
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var current model.Tournament
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, t.ID).Error; err != nil {
			return err
		}
		if current.MaxParticipants > 0 && current.CurrentParticipants >= current.MaxParticipants {
			return response.ErrCapacityExceeded
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return tx.Model(&current).
			Update("current_participants", gorm.Expr("current_participants + 1")).Error
	})

	if txErr != nil {
		failRegister(c, txErr, "team", req.Name)
		return
	}

	log.Info("Equipo registrado", "tournament_id", t.ID, "team", req.Name)
	response.Success(c, team)
}

// RegisterParticipant registers the logged-in user as an individual
// participant. Duplicate registrations are idempotent.
func RegisterParticipant(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	t, ok := tournamentIDValidator(c)
	if !ok {
		return
	}

	if t.Modality == model.ModalityTeams {
		response.Fail(c, response.ErrInvalidRequest.WithTips("este torneo es por equipos, no admite inscripción individual"))
		return
	}

	participant := model.TournamentParticipant{
		TournamentID: t.ID,
		UserID:       payload.UserID,
	}

	var created bool
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var current model.Tournament
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, t.ID).Error; err != nil {
			return err
		}

		var existing model.TournamentParticipant
		err := tx.Where("tournament_id = ? AND user_id = ?", t.ID, payload.UserID).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if current.MaxParticipants > 0 && current.CurrentParticipants >= current.MaxParticipants {
			return response.ErrCapacityExceeded
		}
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}
		created = true
		return tx.Model(&current).
			Update("current_participants", gorm.Expr("current_participants + 1")).Error
	})

	if txErr != nil {
		failRegister(c, txErr, "participant", "")
		return
	}

	if !created {
		response.SuccessWithMsg(c, "Ya estás inscrito en este torneo", gin.H{
			"already_registered": true,
		})
		return
	}

	log.Info("Participante registrado", "tournament_id", t.ID, "user_id", payload.UserID)
	response.Success(c, participant)
}

func failRegister(c *gin.Context, err error, kind, name string) {
	var coded *response.Error
	if errors.As(err, &coded) {
		response.Fail(c, coded)
		return
	}
	log.Error("Error al registrar en el torneo", "error", err, "kind", kind, "name", name)
	response.Fail(c, response.ErrDatabase.WithOrigin(err))
}

func tournamentIDValidator(c *gin.Context) (*model.Tournament, bool) {
	tournamentID := c.Param("id")
	if tournamentID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("el ID de torneo no puede estar vacío"))
		return nil, false
	}

	var t model.Tournament
	err := database.DB.First(&t, "id = ?", tournamentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound)
		return nil, false
	}
	if err != nil {
		log.Error("Error al consultar el torneo", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, false
	}
	return &t, true
}
