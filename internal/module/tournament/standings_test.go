package tournament

import (
	"fmt"
	"testing"
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"
	"student-wellness-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) {
	test.SetupDB(t)
	(&ModuleTournament{}).Init()
}

func createTournament(t *testing.T, modality string) *model.Tournament {
	tour := &model.Tournament{
		Name:      "Copa Interna",
		Sport:     "fútbol",
		Modality:  modality,
		StartDate: time.Now().Unix(),
		Status:    model.StatusInProgress,
	}
	require.NoError(t, database.DB.Create(tour).Error)
	return tour
}

func createTeam(t *testing.T, tournamentID uint, name string) *model.Team {
	team := &model.Team{TournamentID: tournamentID, Name: name}
	require.NoError(t, database.DB.Create(team).Error)
	return team
}

func createSlot(t *testing.T) *model.Schedule {
	s := &model.Schedule{Day: "monday", StartTime: "10:00", EndTime: "12:00"}
	require.NoError(t, database.DB.Create(s).Error)
	return s
}

func scheduleGame(t *testing.T, tour *model.Tournament, home, away *model.Team) uint {
	slot := createSlot(t)
	resp := test.DoRequestAs(t, CreateGame, nil, GameCreateReq{
		ScheduleID: slot.ID,
		HomeTeamID: &home.ID,
		AwayTeamID: &away.ID,
	}, gin.Param{Key: "id", Value: fmt.Sprint(tour.ID)})
	test.NoError(t, resp)
	return uint(test.DataMap(t, resp)["id"].(float64))
}

func recordScore(t *testing.T, gameID uint, home, away uint) {
	resp := test.DoRequestAs(t, RecordScore, nil, ScoreReq{
		HomeScore: &home,
		AwayScore: &away,
	}, gin.Param{Key: "game_id", Value: fmt.Sprint(gameID)})
	test.NoError(t, resp)
}

func reloadTeam(t *testing.T, id uint) model.Team {
	var team model.Team
	require.NoError(t, database.DB.First(&team, id).Error)
	return team
}

func TestRecordScoreUpdatesStandings(t *testing.T) {
	setupTest(t)
	tour := createTournament(t, model.ModalityTeams)
	a := createTeam(t, tour.ID, "Tigres")
	b := createTeam(t, tour.ID, "Leones")

	gameID := scheduleGame(t, tour, a, b)
	recordScore(t, gameID, 2, 1)

	winner := reloadTeam(t, a.ID)
	require.EqualValues(t, 3, winner.Points)
	require.EqualValues(t, 2, winner.GoalsFor)
	require.EqualValues(t, 1, winner.GoalsAgainst)

	loser := reloadTeam(t, b.ID)
	require.EqualValues(t, 0, loser.Points)
	require.EqualValues(t, 1, loser.GoalsFor)
	require.EqualValues(t, 2, loser.GoalsAgainst)
}

func TestRecordScoreRevertsPreviousResult(t *testing.T) {
	setupTest(t)
	tour := createTournament(t, model.ModalityTeams)
	a := createTeam(t, tour.ID, "Tigres")
	b := createTeam(t, tour.ID, "Leones")

	gameID := scheduleGame(t, tour, a, b)
	recordScore(t, gameID, 2, 1)
	// correcting the score replaces the previous result instead of stacking
	recordScore(t, gameID, 1, 1)

	home := reloadTeam(t, a.ID)
	require.EqualValues(t, 1, home.Points)
	require.EqualValues(t, 1, home.GoalsFor)
	require.EqualValues(t, 1, home.GoalsAgainst)

	away := reloadTeam(t, b.ID)
	require.EqualValues(t, 1, away.Points)
}

func TestStandingsOrderedByPointsThenGoalDiff(t *testing.T) {
	setupTest(t)
	tour := createTournament(t, model.ModalityTeams)
	a := createTeam(t, tour.ID, "Tigres")
	b := createTeam(t, tour.ID, "Leones")
	c := createTeam(t, tour.ID, "Águilas")

	recordScore(t, scheduleGame(t, tour, a, b), 3, 0)
	recordScore(t, scheduleGame(t, tour, c, b), 1, 0)

	resp := test.DoGet(t, Standings, nil, "", gin.Param{Key: "id", Value: fmt.Sprint(tour.ID)})
	test.NoError(t, resp)

	rows, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, rows, 3)

	first := rows[0].(map[string]any)
	second := rows[1].(map[string]any)
	third := rows[2].(map[string]any)
	require.Equal(t, "Tigres", first["name"])  // 3 pts, +3
	require.Equal(t, "Águilas", second["name"]) // 3 pts, +1
	require.Equal(t, "Leones", third["name"])
}

func TestCreateGameRejectsSelfPlay(t *testing.T) {
	setupTest(t)
	tour := createTournament(t, model.ModalityTeams)
	a := createTeam(t, tour.ID, "Tigres")
	slot := createSlot(t)

	resp := test.DoRequestAs(t, CreateGame, nil, GameCreateReq{
		ScheduleID: slot.ID,
		HomeTeamID: &a.ID,
		AwayTeamID: &a.ID,
	}, gin.Param{Key: "id", Value: fmt.Sprint(tour.ID)})
	test.ErrorCode(t, response.ErrInvalidRequest, resp)
}

func TestCreateGameEnforcesModality(t *testing.T) {
	setupTest(t)
	tour := createTournament(t, model.ModalityIndividual)
	a := createTeam(t, tour.ID, "Tigres")
	b := createTeam(t, tour.ID, "Leones")
	slot := createSlot(t)

	resp := test.DoRequestAs(t, CreateGame, nil, GameCreateReq{
		ScheduleID: slot.ID,
		HomeTeamID: &a.ID,
		AwayTeamID: &b.ID,
	}, gin.Param{Key: "id", Value: fmt.Sprint(tour.ID)})
	test.ErrorCode(t, response.ErrInvalidRequest, resp)
}

func TestCreateGameRejectsForeignTeam(t *testing.T) {
	setupTest(t)
	tour := createTournament(t, model.ModalityTeams)
	other := createTournament(t, model.ModalityTeams)
	a := createTeam(t, tour.ID, "Tigres")
	foreign := createTeam(t, other.ID, "Visitantes")
	slot := createSlot(t)

	resp := test.DoRequestAs(t, CreateGame, nil, GameCreateReq{
		ScheduleID: slot.ID,
		HomeTeamID: &a.ID,
		AwayTeamID: &foreign.ID,
	}, gin.Param{Key: "id", Value: fmt.Sprint(tour.ID)})
	test.ErrorCode(t, response.ErrNotFound, resp)
}
