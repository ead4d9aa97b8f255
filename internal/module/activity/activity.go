package activity

import (
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ActivityCreateReq is the staff request to create an activity.
type ActivityCreateReq struct {
	Name                 string `json:"name" binding:"required"`
	Description          string `json:"description"`
	Category             string `json:"category" binding:"required,oneof=group individual"`
	Type                 string `json:"type" binding:"required"`
	Location             string `json:"location" binding:"required"`
	Published            bool   `json:"published"`
	RequiresRegistration bool   `json:"requires_registration"`
	MaxCapacity          *uint  `json:"max_capacity"`
	CoverURL             string `json:"cover_url"`
}

// ActivityUpdateReq uses pointer fields to support partial updates.
type ActivityUpdateReq struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	Category             *string `json:"category"`
	Type                 *string `json:"type"`
	Location             *string `json:"location"`
	Published            *bool   `json:"published"`
	RequiresRegistration *bool   `json:"requires_registration"`
	MaxCapacity          *uint   `json:"max_capacity"`
	CoverURL             *string `json:"cover_url"`
}

// CreateActivity creates an activity. When registration is required the
// capacity must be set; the rule lives here, not in the schema.
func CreateActivity(c *gin.Context) {
	var req ActivityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la solicitud de creación", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.RequiresRegistration && (req.MaxCapacity == nil || *req.MaxCapacity == 0) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("max_capacity es obligatorio cuando se requiere inscripción"))
		return
	}

	var existing model.Activity
	err := database.DB.Where("name = ? AND location = ?", req.Name, req.Location).First(&existing).Error
	if err == nil {
		log.Warn("La actividad ya existe", "name", req.Name, "location", req.Location)
		response.Fail(c, response.ErrAlreadyExists.WithTips("la actividad ya existe"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("Error de base de datos", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	activity := model.Activity{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Type:                 req.Type,
		Location:             req.Location,
		Published:            req.Published,
		RequiresRegistration: req.RequiresRegistration,
		MaxCapacity:          req.MaxCapacity,
		CoverURL:             req.CoverURL,
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		log.Error("Error al crear la actividad", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Actividad creada", "name", req.Name, "activity_id", activity.ID)

	response.Success(c, gin.H{
		"activity_id": activity.ID,
	})
}

// ListActivitiesReq are the catalog list filters.
type ListActivitiesReq struct {
	Type      string `form:"type"`
	Category  string `form:"category"`
	Published *bool  `form:"published"`
	Name      string `form:"name"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// ListActivities returns the paginated catalog.
func ListActivities(c *gin.Context) {
	var req ListActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("Error al enlazar los parámetros de consulta", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := database.DB.Model(&model.Activity{})

	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Published != nil {
		query = query.Where("published = ?", *req.Published)
	}
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("Error al contar actividades", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var activities []model.Activity
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Find(&activities).Error; err != nil {
		log.Error("Error al listar actividades", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"activities":  activities,
		"total":       total,
		"page":        req.Page,
		"page_size":   req.PageSize,
		"total_pages": (total + int64(req.PageSize) - 1) / int64(req.PageSize),
	})
}

// GetActivity returns one activity with its schedules, enrollment count and
// review count.
func GetActivity(c *gin.Context) {
	a, ok := activityIDValidator(c)
	if !ok {
		return
	}

	var schedules []model.Schedule
	database.DB.Where("activity_id = ?", a.ID).Find(&schedules)

	var enrolledCount int64
	database.DB.Model(&model.Enrollment{}).Where("activity_id = ?", a.ID).Count(&enrolledCount)

	var reviewCount int64
	database.DB.Model(&model.ActivityReview{}).Where("activity_id = ?", a.ID).Count(&reviewCount)

	isFull := false
	if a.RequiresRegistration && a.MaxCapacity != nil {
		isFull = enrolledCount >= int64(*a.MaxCapacity)
	}

	response.Success(c, gin.H{
		"activity":       a,
		"schedules":      schedules,
		"enrolled_count": enrolledCount,
		"review_count":   reviewCount,
		"is_full_status": isFull,
	})
}

// UpdateActivity applies a partial update; the capacity rule is re-checked
// against the resulting state.
func UpdateActivity(c *gin.Context) {
	a, ok := activityIDValidator(c)
	if !ok {
		return
	}

	var req ActivityUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la solicitud de actualización", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Category != nil {
		if *req.Category != model.CategoryGroup && *req.Category != model.CategoryIndividual {
			response.Fail(c, response.ErrInvalidRequest.WithTips("categoría inválida"))
			return
		}
		a.Category = *req.Category
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Location != nil {
		if *req.Location == "" {
			response.Fail(c, response.ErrInvalidRequest.WithTips("la ubicación no puede estar vacía"))
			return
		}
		a.Location = *req.Location
	}
	if req.Published != nil {
		a.Published = *req.Published
	}
	if req.RequiresRegistration != nil {
		a.RequiresRegistration = *req.RequiresRegistration
	}
	if req.MaxCapacity != nil {
		a.MaxCapacity = req.MaxCapacity
	}

	if a.RequiresRegistration && (a.MaxCapacity == nil || *a.MaxCapacity == 0) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("max_capacity es obligatorio cuando se requiere inscripción"))
		return
	}

	if err := database.DB.Save(a).Error; err != nil {
		log.Error("Error al actualizar la actividad", "error", err, "activity_id", a.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, a)
}

// DeleteActivity soft-deletes an activity and its schedules.
func DeleteActivity(c *gin.Context) {
	a, ok := activityIDValidator(c)
	if !ok {
		return
	}

	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", a.ID).Delete(&model.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(a).Error
	}); err != nil {
		log.Error("Error al eliminar la actividad", "error", err, "activity_id", a.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Actividad eliminada", "activity_id", a.ID)
	response.Success(c, gin.H{"activity_id": a.ID})
}

func activityIDValidator(c *gin.Context) (*model.Activity, bool) {
	activityID := c.Param("id")
	if activityID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("el ID de actividad no puede estar vacío"))
		return nil, false
	}

	var a model.Activity
	err := database.DB.First(&a, "id = ?", activityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound)
		return nil, false
	}
	if err != nil {
		log.Error("Error al consultar la actividad", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return nil, false
	}
	return &a, true
}
