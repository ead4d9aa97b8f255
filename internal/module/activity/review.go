package activity

import (
	"student-wellness-system/internal/global/context"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

// ReviewReq is a student review of an activity.
type ReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// SubmitReview stores a review for an existing activity.
func SubmitReview(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	a, ok := activityIDValidator(c)
	if !ok {
		return
	}

	var req ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la reseña", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	review := model.ActivityReview{
		ActivityID: a.ID,
		UserID:     payload.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := database.DB.Create(&review).Error; err != nil {
		log.Error("Error al guardar la reseña", "error", err, "activity_id", a.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Reseña registrada", "activity_id", a.ID, "user_id", payload.UserID, "rating", req.Rating)

	response.Success(c, review)
}

// ListReviewsReq filters the staff review list.
type ListReviewsReq struct {
	ActivityID uint  `form:"activity_id"`
	Unread     *bool `form:"unread"`
	Page       int   `form:"page"`
	PageSize   int   `form:"page_size"`
}

// ListReviews returns reviews for staff triage, optionally only unread ones.
func ListReviews(c *gin.Context) {
	var req ListReviewsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := database.DB.Model(&model.ActivityReview{})
	if req.ActivityID != 0 {
		query = query.Where("activity_id = ?", req.ActivityID)
	}
	if req.Unread != nil && *req.Unread {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var reviews []model.ActivityReview
	if err := query.Order("created_at DESC").
		Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).
		Find(&reviews).Error; err != nil {
		log.Error("Error al listar reseñas", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"reviews": reviews,
		"total":   total,
	})
}

// MarkReviewRead flags a review as handled by staff.
func MarkReviewRead(c *gin.Context) {
	reviewID := c.Param("review_id")
	if reviewID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("el ID de reseña no puede estar vacío"))
		return
	}

	var review model.ActivityReview
	if err := database.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("reseña no encontrada"))
		return
	}

	review.Read = true
	if err := database.DB.Save(&review).Error; err != nil {
		log.Error("Error al marcar la reseña", "error", err, "review_id", review.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, review)
}
