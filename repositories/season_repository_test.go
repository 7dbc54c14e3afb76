package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
	"github.com/gfmartins/racing-system/testutil"
)

func TestSeasonCreateAndGet(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresSeasonRepository(conn)
	ctx := context.Background()

	season := &models.Season{
		Year:      2024,
		Status:    "Ativa",
		StartDate: models.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   models.NewDate(time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)),
	}
	if err := repo.Create(ctx, season); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if season.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := repo.GetByID(ctx, season.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.Year != 2024 || got.Status != "Ativa" {
		t.Errorf("unexpected season: %+v", got)
	}
	if got.StartDate == nil || got.StartDate.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("unexpected start date: %v", got.StartDate)
	}

	byYear, err := repo.GetByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("get by year failed: %v", err)
	}
	if byYear.ID != season.ID {
		t.Errorf("expected id %d, got %d", season.ID, byYear.ID)
	}

	if _, err := repo.GetByYear(ctx, 1899); !errors.Is(err, repositories.ErrSeasonNotFound) {
		t.Errorf("expected ErrSeasonNotFound, got %v", err)
	}
}

func TestSeasonListOrderedByYearDesc(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresSeasonRepository(conn)
	ctx := context.Background()

	for _, year := range []int{2022, 2024, 2023} {
		testutil.SeedSeason(t, conn, year)
	}

	seasons, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(seasons) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(seasons))
	}
	for i, want := range []int{2024, 2023, 2022} {
		if seasons[i].Year != want {
			t.Errorf("position %d: expected year %d, got %d", i, want, seasons[i].Year)
		}
	}
}

func TestSeasonYearConflict(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresSeasonRepository(conn)
	ctx := context.Background()

	testutil.SeedSeason(t, conn, 2024)

	err := repo.Create(ctx, &models.Season{Year: 2024, Status: "Ativa"})
	if !errors.Is(err, repositories.ErrSeasonYearConflict) {
		t.Errorf("expected ErrSeasonYearConflict, got %v", err)
	}
}

func TestSeasonUpdateAndDelete(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := repositories.NewPostgresSeasonRepository(conn)
	ctx := context.Background()

	id := testutil.SeedSeason(t, conn, 2024)

	if err := repo.Update(ctx, &models.Season{ID: id, Year: 2024, Status: "Encerrada"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != "Encerrada" {
		t.Errorf("expected status Encerrada, got %s", got.Status)
	}

	if err := repo.Update(ctx, &models.Season{ID: 9999, Year: 1950}); !errors.Is(err, repositories.ErrSeasonNotFound) {
		t.Errorf("expected ErrSeasonNotFound on update, got %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, repositories.ErrSeasonNotFound) {
		t.Errorf("expected ErrSeasonNotFound on second delete, got %v", err)
	}
}
