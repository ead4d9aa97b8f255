package media

import (
	"student-wellness-system/internal/global/response"

	"github.com/gin-gonic/gin"

	globalmedia "student-wellness-system/internal/global/media"
)

type PresignReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// PresignCoverUpload signs a direct PUT to the bucket so cover images never
// pass through the backend.
func PresignCoverUpload(c *gin.Context) {
	var req PresignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	presigned, err := store.GeneratePresignedUploadURL(c.Request.Context(), globalmedia.PresignedUploadRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		ExpiresIn:   req.ExpiresIn,
	})
	if err != nil {
		log.Error("No se pudo firmar la subida", "err", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	response.Success(c, presigned)
}

// UploadCover stores the image on local disk. Fallback for deployments
// without an S3 bucket.
func UploadCover(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	url, err := store.SaveLocal(fileHeader)
	if err != nil {
		log.Error("No se pudo guardar el archivo", "err", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"url": url})
}
