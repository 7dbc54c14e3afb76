package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
)

type RaceService interface {
	List(ctx context.Context) ([]models.Race, error)
	GetByID(ctx context.Context, id int) (*models.Race, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Race, error)
	Results(ctx context.Context, raceID int) ([]models.Result, error)
	Create(ctx context.Context, input RaceInput) (*models.Race, error)
	Update(ctx context.Context, id int, input RaceInput) (*models.Race, error)
	Delete(ctx context.Context, id int) error
}

type RaceInput struct {
	SeasonID int          `json:"id_temporada"`
	Name     string       `json:"nome_corrida"`
	Location *string      `json:"local_corrida"`
	Date     *models.Date `json:"data_corrida"`
}

type raceService struct {
	raceRepo   repositories.RaceRepository
	resultRepo repositories.ResultRepository
}

func NewRaceService(raceRepo repositories.RaceRepository, resultRepo repositories.ResultRepository) RaceService {
	return &raceService{raceRepo: raceRepo, resultRepo: resultRepo}
}

func (s *raceService) List(ctx context.Context) ([]models.Race, error) {
	races, err := s.raceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list races: %w", err)
	}
	return races, nil
}

func (s *raceService) GetByID(ctx context.Context, id int) (*models.Race, error) {
	race, err := s.raceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRaceNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to get race %d: %w", id, err)
	}
	return race, nil
}

func (s *raceService) ListBySeason(ctx context.Context, seasonID int) ([]models.Race, error) {
	races, err := s.raceRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list races of season %d: %w", seasonID, err)
	}
	return races, nil
}

func (s *raceService) Results(ctx context.Context, raceID int) ([]models.Result, error) {
	results, err := s.resultRepo.ListByRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results of race %d: %w", raceID, err)
	}
	return results, nil
}

func (s *raceService) Create(ctx context.Context, input RaceInput) (*models.Race, error) {
	name := strings.TrimSpace(input.Name)
	if input.SeasonID == 0 || name == "" {
		return nil, ErrRaceFieldsRequired
	}

	race := &models.Race{
		SeasonID: input.SeasonID,
		Name:     name,
		Location: input.Location,
		Date:     input.Date,
	}

	if err := s.raceRepo.Create(ctx, race); err != nil {
		return nil, fmt.Errorf("failed to create race: %w", err)
	}
	return race, nil
}

func (s *raceService) Update(ctx context.Context, id int, input RaceInput) (*models.Race, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrRaceFieldsRequired
	}

	race := &models.Race{
		ID:       id,
		Name:     name,
		Location: input.Location,
		Date:     input.Date,
	}

	if err := s.raceRepo.Update(ctx, race); err != nil {
		if errors.Is(err, repositories.ErrRaceNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to update race %d: %w", id, err)
	}
	return race, nil
}

func (s *raceService) Delete(ctx context.Context, id int) error {
	if err := s.raceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRaceNotFound) {
			return ErrRaceNotFound
		}
		return fmt.Errorf("failed to delete race %d: %w", id, err)
	}
	return nil
}
