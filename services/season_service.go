package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
	"github.com/gfmartins/racing-system/storage"
	"golang.org/x/sync/errgroup"
)

const defaultSeasonStatus = "Ativa"

type SeasonService interface {
	List(ctx context.Context) ([]models.Season, error)
	GetByID(ctx context.Context, id int) (*models.Season, error)
	GetByYear(ctx context.Context, year int) (*models.Season, error)
	ListRaces(ctx context.Context, seasonID int) ([]models.Race, error)
	Summary(ctx context.Context, seasonID int) (*models.SeasonSummary, error)
	Results(ctx context.Context, seasonID int) ([]models.Result, error)
	Standings(ctx context.Context, seasonID int) (*models.SeasonStandings, error)
	Create(ctx context.Context, input SeasonInput) (*models.Season, error)
	Update(ctx context.Context, id int, input SeasonInput) (*models.Season, error)
	UploadPhoto(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, id int) error
}

type SeasonInput struct {
	Year      int          `json:"ano_temporada"`
	Status    string       `json:"status_temporada"`
	StartDate *models.Date `json:"data_inicio_temporada"`
	EndDate   *models.Date `json:"data_fim_temporada"`
	PhotoURL  *string      `json:"foto_temporada_url"`
}

type seasonService struct {
	seasonRepo   repositories.SeasonRepository
	raceRepo     repositories.RaceRepository
	teamRepo     repositories.TeamRepository
	championRepo repositories.ChampionRepository
	resultRepo   repositories.ResultRepository
	uploader     storage.FileUploader
}

func NewSeasonService(
	seasonRepo repositories.SeasonRepository,
	raceRepo repositories.RaceRepository,
	teamRepo repositories.TeamRepository,
	championRepo repositories.ChampionRepository,
	resultRepo repositories.ResultRepository,
	uploader storage.FileUploader,
) SeasonService {
	return &seasonService{
		seasonRepo:   seasonRepo,
		raceRepo:     raceRepo,
		teamRepo:     teamRepo,
		championRepo: championRepo,
		resultRepo:   resultRepo,
		uploader:     uploader,
	}
}

func (s *seasonService) List(ctx context.Context) ([]models.Season, error) {
	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return seasons, nil
}

func (s *seasonService) GetByID(ctx context.Context, id int) (*models.Season, error) {
	season, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get season %d: %w", id, err)
	}
	return season, nil
}

func (s *seasonService) GetByYear(ctx context.Context, year int) (*models.Season, error) {
	season, err := s.seasonRepo.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get season by year %d: %w", year, err)
	}
	return season, nil
}

func (s *seasonService) ListRaces(ctx context.Context, seasonID int) ([]models.Race, error) {
	races, err := s.raceRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list races of season %d: %w", seasonID, err)
	}
	return races, nil
}

// Summary monta em uma chamada o que o cliente buscava em quatro: a
// temporada, suas corridas, as equipes participantes e os campeões.
func (s *seasonService) Summary(ctx context.Context, seasonID int) (*models.SeasonSummary, error) {
	season, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	summary := &models.SeasonSummary{Season: season}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		races, err := s.raceRepo.ListBySeason(gCtx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to list races: %w", err)
		}
		summary.Races = races
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.ListBySeason(gCtx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}
		summary.Teams = teams
		return nil
	})
	g.Go(func() error {
		champions, err := s.championRepo.ListBySeason(gCtx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to list champions: %w", err)
		}
		summary.Champions = champions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build summary of season %d: %w", seasonID, err)
	}
	return summary, nil
}

func (s *seasonService) Results(ctx context.Context, seasonID int) ([]models.Result, error) {
	results, err := s.resultRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results of season %d: %w", seasonID, err)
	}
	return results, nil
}

func (s *seasonService) Standings(ctx context.Context, seasonID int) (*models.SeasonStandings, error) {
	standings, err := s.resultRepo.StandingsBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to build standings of season %d: %w", seasonID, err)
	}
	return standings, nil
}

func (s *seasonService) Create(ctx context.Context, input SeasonInput) (*models.Season, error) {
	if input.Year == 0 {
		return nil, ErrSeasonYearRequired
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = defaultSeasonStatus
	}

	season := &models.Season{
		Year:      input.Year,
		Status:    status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		PhotoURL:  input.PhotoURL,
	}

	if err := s.seasonRepo.Create(ctx, season); err != nil {
		if errors.Is(err, repositories.ErrSeasonYearConflict) {
			return nil, ErrSeasonYearConflict
		}
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return season, nil
}

func (s *seasonService) Update(ctx context.Context, id int, input SeasonInput) (*models.Season, error) {
	if input.Year == 0 {
		return nil, ErrSeasonYearRequired
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = defaultSeasonStatus
	}

	season := &models.Season{
		ID:        id,
		Year:      input.Year,
		Status:    status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		PhotoURL:  input.PhotoURL,
	}

	if err := s.seasonRepo.Update(ctx, season); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSeasonNotFound):
			return nil, ErrSeasonNotFound
		case errors.Is(err, repositories.ErrSeasonYearConflict):
			return nil, ErrSeasonYearConflict
		default:
			return nil, fmt.Errorf("failed to update season %d: %w", id, err)
		}
	}
	return season, nil
}

func (s *seasonService) UploadPhoto(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}

	url, err := uploadImage(ctx, s.uploader, "temporadas", id, filename, contentType, r)
	if err != nil {
		return "", err
	}

	if err := s.seasonRepo.UpdatePhotoURL(ctx, id, url); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return "", ErrSeasonNotFound
		}
		return "", fmt.Errorf("failed to save season photo URL: %w", err)
	}
	return url, nil
}

func (s *seasonService) Delete(ctx context.Context, id int) error {
	if err := s.seasonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return ErrSeasonNotFound
		}
		return fmt.Errorf("failed to delete season %d: %w", id, err)
	}
	return nil
}
