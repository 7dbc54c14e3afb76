package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
)

type ChampionService interface {
	List(ctx context.Context) ([]models.Champion, error)
	GetByID(ctx context.Context, id int) (*models.Champion, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Champion, error)
	Create(ctx context.Context, input ChampionInput) (*models.Champion, error)
	Update(ctx context.Context, id int, input ChampionInput) (*models.Champion, error)
	Delete(ctx context.Context, id int) error
}

type ChampionInput struct {
	SeasonID  int  `json:"id_temporada"`
	DriverID  *int `json:"id_piloto"`
	TeamID    *int `json:"id_equipe"`
	TitleYear *int `json:"ano_campeao"`
}

type championService struct {
	championRepo repositories.ChampionRepository
}

func NewChampionService(championRepo repositories.ChampionRepository) ChampionService {
	return &championService{championRepo: championRepo}
}

func (s *championService) List(ctx context.Context) ([]models.Champion, error) {
	champions, err := s.championRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions: %w", err)
	}
	return champions, nil
}

func (s *championService) GetByID(ctx context.Context, id int) (*models.Champion, error) {
	champion, err := s.championRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionNotFound) {
			return nil, ErrChampionNotFound
		}
		return nil, fmt.Errorf("failed to get champion %d: %w", id, err)
	}
	return champion, nil
}

func (s *championService) ListBySeason(ctx context.Context, seasonID int) ([]models.Champion, error) {
	champions, err := s.championRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list champions of season %d: %w", seasonID, err)
	}
	return champions, nil
}

func (s *championService) Create(ctx context.Context, input ChampionInput) (*models.Champion, error) {
	// Um campeão referencia um piloto ou uma equipe, nunca os dois.
	if input.SeasonID == 0 || (input.DriverID == nil && input.TeamID == nil) {
		return nil, ErrChampionRefsRequired
	}
	if input.DriverID != nil && input.TeamID != nil {
		return nil, ErrChampionRefsExclusive
	}

	champion := &models.Champion{
		SeasonID:  input.SeasonID,
		DriverID:  input.DriverID,
		TeamID:    input.TeamID,
		TitleYear: input.TitleYear,
	}

	if err := s.championRepo.Create(ctx, champion); err != nil {
		if errors.Is(err, repositories.ErrChampionConflict) {
			return nil, ErrChampionConflict
		}
		return nil, fmt.Errorf("failed to create champion: %w", err)
	}
	return champion, nil
}

func (s *championService) Update(ctx context.Context, id int, input ChampionInput) (*models.Champion, error) {
	if input.DriverID == nil && input.TeamID == nil {
		return nil, ErrChampionUpdateRefRequired
	}
	if input.DriverID != nil && input.TeamID != nil {
		return nil, ErrChampionRefsExclusive
	}

	champion := &models.Champion{
		ID:        id,
		DriverID:  input.DriverID,
		TeamID:    input.TeamID,
		TitleYear: input.TitleYear,
	}

	if err := s.championRepo.Update(ctx, champion); err != nil {
		if errors.Is(err, repositories.ErrChampionNotFound) {
			return nil, ErrChampionNotFound
		}
		if errors.Is(err, repositories.ErrChampionConflict) {
			return nil, ErrChampionConflict
		}
		return nil, fmt.Errorf("failed to update champion %d: %w", id, err)
	}
	return champion, nil
}

func (s *championService) Delete(ctx context.Context, id int) error {
	if err := s.championRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrChampionNotFound) {
			return ErrChampionNotFound
		}
		return fmt.Errorf("failed to delete champion %d: %w", id, err)
	}
	return nil
}
