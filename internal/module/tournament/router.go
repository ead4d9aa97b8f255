package tournament

import (
	"student-wellness-system/internal/global/middleware"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (t *ModuleTournament) InitRouter(r *gin.RouterGroup) {
	staffGroup := r.Group("/tournament")
	commonGroup := r.Group("/tournament")

	staffGroup.Use(middleware.Auth(model.RoleCADI))
	{
		staffGroup.POST("/create", CreateTournament)
		staffGroup.PUT("/update/:id", UpdateTournament)
		staffGroup.DELETE("/delete/:id", DeleteTournament)
		staffGroup.POST("/:id/game", CreateGame)
		staffGroup.PUT("/game/:game_id/score", RecordScore)
	}

	commonGroup.Use(middleware.Auth(model.RoleStudent))
	{
		commonGroup.GET("/list", ListTournaments)
		commonGroup.GET("/:id", GetTournament)
		commonGroup.POST("/:id/team", RegisterTeam)
		commonGroup.POST("/:id/participant", RegisterParticipant)
		commonGroup.GET("/:id/games", ListGames)
		commonGroup.GET("/:id/standings", Standings)
	}
}
