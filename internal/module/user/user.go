package user

import (
	"student-wellness-system/internal/global/context"
	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"
	"student-wellness-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedFaculties inserts the faculty reference rows, including the reserved
// CADI faculty used to mark staff accounts. Idempotent across restarts.
func seedFaculties() {
	names := []string{
		model.CADIFacultyName,
		"Ingeniería",
		"Ciencias de la Salud",
		"Ciencias Sociales",
		"Artes y Humanidades",
		"Ciencias Económicas",
	}
	for _, name := range names {
		faculty := model.Faculty{Name: name}
		if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&faculty).Error; err != nil {
			log.Error("No se pudo sembrar la facultad", "name", name, "error", err)
		}
	}
}

// RegisterReq is the account creation request.
type RegisterReq struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Gender         string `json:"gender" binding:"required,oneof=F M O"`
	IdentityNumber string `json:"identity_number" binding:"required"`
	FacultyID      *uint  `json:"faculty_id"`
}

// Register creates a student account.
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la solicitud de registro", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var existing model.User
	err := database.DB.Where("username = ? OR identity_number = ?", req.Username, req.IdentityNumber).
		First(&existing).Error
	if err == nil {
		log.Warn("El usuario ya existe", "username", req.Username)
		response.Fail(c, response.ErrAlreadyExists.WithTips("usuario o número de identificación ya registrado"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("Error de base de datos en el registro", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.FacultyID != nil {
		var faculty model.Faculty
		if err := database.DB.First(&faculty, *req.FacultyID).Error; err != nil {
			response.Fail(c, response.ErrNotFound.WithTips("facultad no encontrada"))
			return
		}
	}

	hashed, err := tools.PasswordHash(req.Password)
	if err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	user := model.User{
		Username:       req.Username,
		Password:       hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Gender:         req.Gender,
		IdentityNumber: req.IdentityNumber,
		FacultyID:      req.FacultyID,
		RoleID:         model.RoleStudent,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("Error al crear el usuario", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("Usuario registrado", "username", user.Username, "user_id", user.ID)

	response.Success(c, gin.H{
		"user_id": user.ID,
	})
}

// LoginReq is the credential login request.
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and issues a JWT.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("Error al enlazar la solicitud de login", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("username = ?", req.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("Usuario no existe", "username", req.Username)
		response.Fail(c, response.ErrNotFound.WithTips("usuario no existe"))
		return
	case err != nil:
		log.Error("Error de base de datos en login", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("Contraseña incorrecta", "username", req.Username)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("Inicio de sesión exitoso", "username", user.Username, "role_id", user.RoleID)

	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID:   user.ID,
			Username: user.Username,
			RoleID:   user.RoleID,
		}),
		"user_id":  user.ID,
		"username": user.Username,
		"role_id":  user.RoleID,
	})
}

// Profile returns the logged-in user's account with its faculty.
func Profile(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.Preload("Faculty").First(&user, payload.UserID).Error; err != nil {
		response.Fail(c, response.ErrNotFound)
		return
	}

	response.Success(c, user)
}

// ListFaculties returns the faculty reference rows.
func ListFaculties(c *gin.Context) {
	var faculties []model.Faculty
	if err := database.DB.Order("name").Find(&faculties).Error; err != nil {
		log.Error("Error al listar facultades", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, faculties)
}
