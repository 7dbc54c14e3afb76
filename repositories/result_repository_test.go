package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
	"github.com/gfmartins/racing-system/testutil"
)

func TestResultListByRaceWithLabels(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresResultRepository(conn)
	ctx := context.Background()

	seasonID := testutil.SeedSeason(t, conn, 2024)
	teamID := testutil.SeedTeam(t, conn, "Falcões")
	driverID := testutil.SeedDriver(t, conn, "A. Silva")
	teamSeasonID := testutil.SeedTeamSeason(t, conn, teamID, seasonID)
	linkID := testutil.SeedDriverTeamSeason(t, conn, driverID, teamSeasonID, 11)
	raceID := testutil.SeedRace(t, conn, seasonID, "GP de Interlagos", "São Paulo", "2024-03-24")
	testutil.SeedResult(t, conn, raceID, linkID, 3, 1, 25, models.RaceStatusFinished)

	results, err := repo.ListByRace(ctx, raceID)
	if err != nil {
		t.Fatalf("list by race failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	got := results[0]
	if got.FinalPosition == nil || *got.FinalPosition != 1 {
		t.Errorf("unexpected final position: %v", got.FinalPosition)
	}
	if got.DriverName == nil || *got.DriverName != "A. Silva" {
		t.Errorf("unexpected driver name: %v", got.DriverName)
	}
	if got.TeamName == nil || *got.TeamName != "Falcões" {
		t.Errorf("unexpected team name: %v", got.TeamName)
	}
	if got.RaceName == nil || *got.RaceName != "GP de Interlagos" {
		t.Errorf("unexpected race name: %v", got.RaceName)
	}
	if got.SeasonYear == nil || *got.SeasonYear != 2024 {
		t.Errorf("unexpected season year: %v", got.SeasonYear)
	}
	if got.Points != 25 {
		t.Errorf("expected 25 points, got %v", got.Points)
	}
}

func TestResultDuplicateDriverInRace(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresResultRepository(conn)
	ctx := context.Background()

	seasonID := testutil.SeedSeason(t, conn, 2024)
	teamID := testutil.SeedTeam(t, conn, "Falcões")
	driverID := testutil.SeedDriver(t, conn, "A. Silva")
	teamSeasonID := testutil.SeedTeamSeason(t, conn, teamID, seasonID)
	linkID := testutil.SeedDriverTeamSeason(t, conn, driverID, teamSeasonID, 11)
	raceID := testutil.SeedRace(t, conn, seasonID, "GP de Interlagos", "São Paulo", "2024-03-24")
	testutil.SeedResult(t, conn, raceID, linkID, 3, 1, 25, models.RaceStatusFinished)

	err := repo.Create(ctx, &models.Result{
		RaceID:             raceID,
		DriverTeamSeasonID: linkID,
		Points:             18,
		Status:             models.RaceStatusFinished,
	})
	if !errors.Is(err, repositories.ErrResultConflict) {
		t.Errorf("expected ErrResultConflict, got %v", err)
	}
}

func TestStandingsBySeason(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresResultRepository(conn)
	ctx := context.Background()

	seasonID := testutil.SeedSeason(t, conn, 2024)
	teamA := testutil.SeedTeam(t, conn, "Falcões")
	teamB := testutil.SeedTeam(t, conn, "Tempestade")
	silva := testutil.SeedDriver(t, conn, "A. Silva")
	souza := testutil.SeedDriver(t, conn, "B. Souza")
	tsA := testutil.SeedTeamSeason(t, conn, teamA, seasonID)
	tsB := testutil.SeedTeamSeason(t, conn, teamB, seasonID)
	linkSilva := testutil.SeedDriverTeamSeason(t, conn, silva, tsA, 11)
	linkSouza := testutil.SeedDriverTeamSeason(t, conn, souza, tsB, 22)
	race1 := testutil.SeedRace(t, conn, seasonID, "GP de Interlagos", "São Paulo", "2024-03-24")
	race2 := testutil.SeedRace(t, conn, seasonID, "GP do Rio", "Rio de Janeiro", "2024-04-14")

	// Silva vence as duas; Souza chega em segundo nas duas.
	testutil.SeedResult(t, conn, race1, linkSilva, 1, 1, 25, models.RaceStatusFinished)
	testutil.SeedResult(t, conn, race1, linkSouza, 2, 2, 18, models.RaceStatusFinished)
	testutil.SeedResult(t, conn, race2, linkSilva, 2, 1, 25, models.RaceStatusFinished)
	testutil.SeedResult(t, conn, race2, linkSouza, 1, 2, 18, models.RaceStatusFinished)

	standings, err := repo.StandingsBySeason(ctx, seasonID)
	if err != nil {
		t.Fatalf("standings failed: %v", err)
	}

	if len(standings.Drivers) != 2 {
		t.Fatalf("expected 2 driver standings, got %d", len(standings.Drivers))
	}
	leader := standings.Drivers[0]
	if leader.DriverName != "A. Silva" || leader.Points != 50 || leader.Wins != 2 {
		t.Errorf("unexpected leader: %+v", leader)
	}
	second := standings.Drivers[1]
	if second.DriverName != "B. Souza" || second.Points != 36 || second.Wins != 0 {
		t.Errorf("unexpected runner-up: %+v", second)
	}

	if len(standings.Constructors) != 2 {
		t.Fatalf("expected 2 constructor standings, got %d", len(standings.Constructors))
	}
	if standings.Constructors[0].TeamName != "Falcões" || standings.Constructors[0].Points != 50 {
		t.Errorf("unexpected constructor leader: %+v", standings.Constructors[0])
	}
}

func TestResultListBySeasonOrderedByRaceDate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresResultRepository(conn)
	ctx := context.Background()

	seasonID := testutil.SeedSeason(t, conn, 2024)
	teamID := testutil.SeedTeam(t, conn, "Falcões")
	driverID := testutil.SeedDriver(t, conn, "A. Silva")
	teamSeasonID := testutil.SeedTeamSeason(t, conn, teamID, seasonID)
	linkID := testutil.SeedDriverTeamSeason(t, conn, driverID, teamSeasonID, 11)

	// Semeia fora de ordem cronológica.
	late := testutil.SeedRace(t, conn, seasonID, "GP do Rio", "Rio de Janeiro", "2024-04-14")
	early := testutil.SeedRace(t, conn, seasonID, "GP de Interlagos", "São Paulo", "2024-03-24")
	testutil.SeedResult(t, conn, late, linkID, 1, 1, 25, models.RaceStatusFinished)
	testutil.SeedResult(t, conn, early, linkID, 1, 2, 18, models.RaceStatusFinished)

	results, err := repo.ListBySeason(ctx, seasonID)
	if err != nil {
		t.Fatalf("list by season failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].RaceID != early || results[1].RaceID != late {
		t.Errorf("expected chronological order, got %d then %d", results[0].RaceID, results[1].RaceID)
	}
}
