package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/testutil"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

func doRequest(t *testing.T, router *chi.Mux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}

func TestFullChampionshipFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	// Cadeia completa de inserts via API, até o resultado da corrida.
	rr := doRequest(t, router, http.MethodPost, "/api/temporadas", map[string]interface{}{
		"ano_temporada": 2024,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create season: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, router, http.MethodGet, "/api/temporadas/ano/2024", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get season by year: expected 200, got %d", rr.Code)
	}
	var season models.Season
	decodeBody(t, rr, &season)
	if season.Status != "Ativa" {
		t.Errorf("expected default status Ativa, got %s", season.Status)
	}

	rr = doRequest(t, router, http.MethodPost, "/api/equipes", map[string]interface{}{
		"nome_equipe": "Falcões",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create team: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doRequest(t, router, http.MethodGet, "/api/equipes", nil)
	var teams []models.Team
	decodeBody(t, rr, &teams)
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}

	rr = doRequest(t, router, http.MethodPost, "/api/pilotos", map[string]interface{}{
		"nome_piloto": "A. Silva",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create driver: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doRequest(t, router, http.MethodGet, "/api/pilotos", nil)
	var drivers []models.Driver
	decodeBody(t, rr, &drivers)
	if len(drivers) != 1 {
		t.Fatalf("expected 1 driver, got %d", len(drivers))
	}

	rr = doRequest(t, router, http.MethodPost, "/api/equipes-temporadas", map[string]interface{}{
		"id_equipe":    teams[0].ID,
		"id_temporada": season.ID,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("link team to season: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/equipes-temporadas/temporada/%d", season.ID), nil)
	var teamSeasons []models.TeamSeason
	decodeBody(t, rr, &teamSeasons)
	if len(teamSeasons) != 1 {
		t.Fatalf("expected 1 team-season link, got %d", len(teamSeasons))
	}

	rr = doRequest(t, router, http.MethodPost, "/api/pilotos-equipes-temporadas", map[string]interface{}{
		"id_piloto":           drivers[0].ID,
		"id_equipe_temporada": teamSeasons[0].ID,
		"numero_carro":        11,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("link driver: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/pilotos-equipes-temporadas/equipe-temporada/%d", teamSeasons[0].ID), nil)
	var links []models.DriverTeamSeason
	decodeBody(t, rr, &links)
	if len(links) != 1 {
		t.Fatalf("expected 1 driver link, got %d", len(links))
	}

	rr = doRequest(t, router, http.MethodPost, "/api/corridas", map[string]interface{}{
		"id_temporada":  season.ID,
		"nome_corrida":  "GP de Interlagos",
		"local_corrida": "São Paulo",
		"data_corrida":  "2024-03-24",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create race: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/temporadas/%d/corridas", season.ID), nil)
	var races []models.Race
	decodeBody(t, rr, &races)
	if len(races) != 1 {
		t.Fatalf("expected 1 race, got %d", len(races))
	}

	rr = doRequest(t, router, http.MethodPost, "/api/resultados", map[string]interface{}{
		"id_corrida":                 races[0].ID,
		"id_piloto_equipe_temporada": links[0].ID,
		"posicao_inicial":            3,
		"posicao_final":              1,
		"pontuacao":                  25,
		"status_corrida":             "Completou",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create result: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/corridas/%d/resultados", races[0].ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("race results: expected 200, got %d", rr.Code)
	}
	var results []models.Result
	decodeBody(t, rr, &results)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].FinalPosition == nil || *results[0].FinalPosition != 1 {
		t.Errorf("unexpected final position: %v", results[0].FinalPosition)
	}
	if results[0].DriverName == nil || *results[0].DriverName != "A. Silva" {
		t.Errorf("unexpected driver name: %v", results[0].DriverName)
	}

	// Read models da temporada.
	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/temporadas/%d/resumo", season.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("season summary: expected 200, got %d", rr.Code)
	}
	var summary models.SeasonSummary
	decodeBody(t, rr, &summary)
	if summary.Season == nil || summary.Season.ID != season.ID {
		t.Errorf("unexpected summary season: %+v", summary.Season)
	}
	if len(summary.Races) != 1 || len(summary.Teams) != 1 {
		t.Errorf("unexpected summary counts: races=%d teams=%d", len(summary.Races), len(summary.Teams))
	}

	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/temporadas/%d/classificacao", season.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("season standings: expected 200, got %d", rr.Code)
	}
	var standings models.SeasonStandings
	decodeBody(t, rr, &standings)
	if len(standings.Drivers) != 1 || standings.Drivers[0].Points != 25 || standings.Drivers[0].Wins != 1 {
		t.Errorf("unexpected standings: %+v", standings.Drivers)
	}
}

func TestSeasonByYearNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	testutil.SeedSeason(t, conn, 2024)

	rr := doRequest(t, router, http.MethodGet, "/api/temporadas/ano/1899", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["erro"] != "Temporada não encontrada" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestEmptyDriversBySeasonEchoesParentID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	seasonID := testutil.SeedSeason(t, conn, 2024)

	rr := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/pilotos/temporada/%d", seasonID), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["mensagem"] != "Nenhum piloto encontrado para esta temporada" {
		t.Errorf("unexpected mensagem: %v", body["mensagem"])
	}
	if int(body["id_temporada"].(float64)) != seasonID {
		t.Errorf("expected id_temporada %d, got %v", seasonID, body["id_temporada"])
	}
}

func TestDuplicateUserEmail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	payload := map[string]interface{}{
		"nome_usuario":  "Gabriel",
		"email_usuario": "gabriel@example.com",
		"senha_usuario": "segredo123",
	}

	rr := doRequest(t, router, http.MethodPost, "/api/usuarios", payload)
	if rr.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, router, http.MethodPost, "/api/usuarios", payload)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create: expected 400, got %d", rr.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["erro"] != "Email já cadastrado" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestUserPasswordIsHashedAndHidden(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	rr := doRequest(t, router, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nome_usuario":  "Gabriel",
		"email_usuario": "gabriel@example.com",
		"senha_usuario": "segredo123",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create user: expected 201, got %d", rr.Code)
	}

	var hash string
	if err := conn.QueryRow(`SELECT senha_usuario FROM usuarios WHERE email_usuario = $1`, "gabriel@example.com").Scan(&hash); err != nil {
		t.Fatalf("failed to read stored password: %v", err)
	}
	if hash == "segredo123" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	rr = doRequest(t, router, http.MethodGet, "/api/usuarios/email/gabriel@example.com", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get user: expected 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if _, ok := body["senha_usuario"]; ok {
		t.Error("password hash leaked in response")
	}
}

func TestUpdateNonexistentSeason(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	rr := doRequest(t, router, http.MethodPut, "/api/temporadas/9999", map[string]interface{}{
		"ano_temporada": 2030,
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestNonNumericPathID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	rr := doRequest(t, router, http.MethodGet, "/api/corridas/abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["erro"] != "ID da corrida deve ser um número" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestDeleteRaceWithResultsFails(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	seasonID := testutil.SeedSeason(t, conn, 2024)
	teamID := testutil.SeedTeam(t, conn, "Falcões")
	driverID := testutil.SeedDriver(t, conn, "A. Silva")
	teamSeasonID := testutil.SeedTeamSeason(t, conn, teamID, seasonID)
	linkID := testutil.SeedDriverTeamSeason(t, conn, driverID, teamSeasonID, 11)
	raceID := testutil.SeedRace(t, conn, seasonID, "GP de Interlagos", "São Paulo", "2024-03-24")
	testutil.SeedResult(t, conn, raceID, linkID, 1, 1, 25, "Completou")

	rr := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/corridas/%d", raceID), nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 deleting race with results, got %d", rr.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["erro"] != "Erro ao excluir corrida" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestMissingRequiredFields(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	tests := []struct {
		path    string
		body    map[string]interface{}
		wantMsg string
	}{
		{"/api/temporadas", map[string]interface{}{}, "Ano da temporada é obrigatório"},
		{"/api/equipes", map[string]interface{}{"nome_equipe": "  "}, "Nome da equipe é obrigatório"},
		{"/api/pilotos", map[string]interface{}{}, "Nome do piloto é obrigatório"},
		{"/api/usuarios", map[string]interface{}{"nome_usuario": "X"}, "Nome, email e senha são obrigatórios"},
		{"/api/campeoes", map[string]interface{}{"id_temporada": 1}, "ID da temporada e pelo menos um ID de piloto ou equipe são obrigatórios"},
		{"/api/resultados", map[string]interface{}{"id_corrida": 1, "id_piloto_equipe_temporada": 1},
			"ID da corrida, ID do piloto/equipe/temporada, posições e status são obrigatórios"},
		{"/api/resultados", map[string]interface{}{
			"id_corrida": 1, "id_piloto_equipe_temporada": 1,
			"posicao_inicial": 3, "posicao_final": 1, "pontuacao": 25,
		}, "ID da corrida, ID do piloto/equipe/temporada, posições e status são obrigatórios"},
	}

	for _, tt := range tests {
		rr := doRequest(t, router, http.MethodPost, tt.path, tt.body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tt.path, rr.Code, rr.Body.String())
			continue
		}
		var body map[string]interface{}
		decodeBody(t, rr, &body)
		if body["erro"] != tt.wantMsg {
			t.Errorf("%s: expected %q, got %v", tt.path, tt.wantMsg, body["erro"])
		}
	}
}

func TestCarNumberZeroIsAccepted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	seasonID := testutil.SeedSeason(t, conn, 2024)
	teamID := testutil.SeedTeam(t, conn, "Falcões")
	driverID := testutil.SeedDriver(t, conn, "A. Silva")
	teamSeasonID := testutil.SeedTeamSeason(t, conn, teamID, seasonID)

	rr := doRequest(t, router, http.MethodPost, "/api/pilotos-equipes-temporadas", map[string]interface{}{
		"id_piloto":           driverID,
		"id_equipe_temporada": teamSeasonID,
		"numero_carro":        0,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for car number 0, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/pilotos-equipes-temporadas/equipe-temporada/%d", teamSeasonID), nil)
	var links []models.DriverTeamSeason
	decodeBody(t, rr, &links)
	if len(links) != 1 || links[0].CarNumber != 0 {
		t.Fatalf("expected one link with car number 0, got %+v", links)
	}

	// Só a ausência do campo é rejeitada na atualização.
	rr = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/pilotos-equipes-temporadas/%d", links[0].ID), map[string]interface{}{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without numero_carro, got %d", rr.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["erro"] != "O campo número do carro deve ser fornecido para atualização" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestChampionRefValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	seasonID := testutil.SeedSeason(t, conn, 2024)
	teamID := testutil.SeedTeam(t, conn, "Falcões")
	driverID := testutil.SeedDriver(t, conn, "A. Silva")
	championID := testutil.SeedDriverChampion(t, conn, seasonID, driverID, 2024)

	rr := doRequest(t, router, http.MethodPost, "/api/campeoes", map[string]interface{}{
		"id_temporada": seasonID,
		"id_piloto":    driverID,
		"id_equipe":    teamID,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 with driver and team, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]interface{}
	decodeBody(t, rr, &body)
	if body["erro"] != "Apenas um ID de piloto ou equipe pode ser informado" {
		t.Errorf("unexpected create error body: %v", body)
	}

	rr = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/campeoes/%d", championID), map[string]interface{}{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 updating without refs, got %d: %s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &body)
	if body["erro"] != "Pelo menos um ID de piloto ou equipe deve ser fornecido para atualização" {
		t.Errorf("unexpected update error body: %v", body)
	}

	rr = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/campeoes/%d", championID), map[string]interface{}{
		"id_piloto": driverID,
		"id_equipe": teamID,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 updating with driver and team, got %d: %s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &body)
	if body["erro"] != "Apenas um ID de piloto ou equipe pode ser informado" {
		t.Errorf("unexpected update error body: %v", body)
	}
}

func TestUploadRoutesDisabledWithoutR2(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	router := testutil.NewTestRouter(t, conn)

	seasonID := testutil.SeedSeason(t, conn, 2024)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/temporadas/%d/foto", seasonID), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// Sem multipart o handler responde 400 antes de chegar no serviço.
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without multipart body, got %d", rr.Code)
	}
}
