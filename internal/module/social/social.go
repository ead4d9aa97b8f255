package social

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

// ProjectReq creates a social project.
type ProjectReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

func CreateProject(c *gin.Context) {
	var req ProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar el proyecto", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	project := model.SocialProject{
		Name:        req.Name,
		Description: req.Description,
		Published:   req.Published,
	}

	if err := database.DB.Create(&project).Error; err != nil {
		log.Error("Error al crear el proyecto", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Proyecto social creado", "name", req.Name, "project_id", project.ID)
	response.Success(c, gin.H{"project_id": project.ID})
}

func ListProjects(c *gin.Context) {
	query := database.DB.Model(&model.SocialProject{})
	if published := c.Query("published"); published == "true" {
		query = query.Where("published = ?", true)
	}

	var projects []model.SocialProject
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		log.Error("Error al listar proyectos", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, projects)
}

func DeleteProject(c *gin.Context) {
	projectID := c.Param("id")

	var project model.SocialProject
	if err := database.DB.First(&project, "id = ?", projectID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("proyecto no encontrado"))
		return
	}

	// cascade: events and their enrollments go with the project
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		var eventIDs []uint
		if err := tx.Model(&model.SocialEvent{}).
			Where("project_id = ?", project.ID).Pluck("id", &eventIDs).Error; err != nil {
			return err
		}
		if len(eventIDs) > 0 {
			if err := tx.Where("event_id IN ?", eventIDs).
				Delete(&model.SocialEventEnrollment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", project.ID).
				Delete(&model.SocialEvent{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&project).Error
	}); err != nil {
		log.Error("Error al eliminar el proyecto", "error", err, "project_id", project.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"project_id": project.ID})
}

// EventReq creates a dated event under a project.
type EventReq struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	EventDate   int64  `json:"event_date" binding:"required"`
	MaxCapacity *uint  `json:"max_capacity"`
}

func CreateEvent(c *gin.Context) {
	projectID := c.Param("id")

	var project model.SocialProject
	if err := database.DB.First(&project, "id = ?", projectID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("proyecto no encontrado"))
		return
	}

	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar el evento", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	event := model.SocialEvent{
		ProjectID:   project.ID,
		Name:        req.Name,
		Location:    req.Location,
		EventDate:   req.EventDate,
		MaxCapacity: req.MaxCapacity,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		log.Error("Error al crear el evento", "error", err, "project_id", project.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, event)
}

func ListEvents(c *gin.Context) {
	projectID := c.Param("id")

	var project model.SocialProject
	if err := database.DB.First(&project, "id = ?", projectID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("proyecto no encontrado"))
		return
	}

	var events []model.SocialEvent
	if err := database.DB.Where("project_id = ?", project.ID).
		Order("event_date").Find(&events).Error; err != nil {
		log.Error("Error al listar eventos", "error", err, "project_id", project.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, events)
}

// EnrollEvent enrolls the user in an event: same capacity and idempotency
// rules as activity enrollment, live-counted inside the transaction.
func EnrollEvent(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	eventID := c.Param("event_id")
	var event model.SocialEvent
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("evento no encontrado"))
		return
	}

	enrollment := model.SocialEventEnrollment{
		UserID:  payload.UserID,
		EventID: event.ID,
	}

	var created bool
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if event.MaxCapacity != nil {
			var count int64
			if err := tx.Model(&model.SocialEventEnrollment{}).
				Where("event_id = ?", event.ID).Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(*event.MaxCapacity) {
				var existing model.SocialEventEnrollment
				err := tx.Where("user_id = ? AND event_id = ?", payload.UserID, event.ID).
					First(&existing).Error
				if err == nil {
					return nil
				}
				return response.ErrCapacityExceeded
			}
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoNothing: true,
		}).Create(&enrollment)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})

	if txErr != nil {
		var coded *response.Error
		if errors.As(txErr, &coded) {
			response.Fail(c, coded)
			return
		}
		log.Error("Error al inscribir al evento", "error", txErr, "event_id", event.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(txErr))
		return
	}

	if !created {
		response.SuccessWithMsg(c, "Ya estás inscrito en este evento", gin.H{
			"already_enrolled": true,
		})
		return
	}

	log.Info("Inscripción a evento creada", "user_id", payload.UserID, "event_id", event.ID)
	response.Success(c, enrollment)
}

func WithdrawEvent(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	eventID := c.Param("event_id")

	var enrollment model.SocialEventEnrollment
	err := database.DB.Where("user_id = ? AND event_id = ?", payload.UserID, eventID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound.WithTips("no estás inscrito en este evento"))
		return
	}
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// hard delete so the unique index lets the user enroll again
	if err := database.DB.Unscoped().Delete(&enrollment).Error; err != nil {
		log.Error("Error al retirar la inscripción al evento", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"enrollment_id": enrollment.ID})
}
