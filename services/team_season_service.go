package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
)

type TeamSeasonService interface {
	List(ctx context.Context) ([]models.TeamSeason, error)
	GetByID(ctx context.Context, id int) (*models.TeamSeason, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.TeamSeason, error)
	Create(ctx context.Context, input TeamSeasonInput) (*models.TeamSeason, error)
	Delete(ctx context.Context, id int) error
}

type TeamSeasonInput struct {
	TeamID   int `json:"id_equipe"`
	SeasonID int `json:"id_temporada"`
}

type teamSeasonService struct {
	teamSeasonRepo repositories.TeamSeasonRepository
}

func NewTeamSeasonService(teamSeasonRepo repositories.TeamSeasonRepository) TeamSeasonService {
	return &teamSeasonService{teamSeasonRepo: teamSeasonRepo}
}

func (s *teamSeasonService) List(ctx context.Context) ([]models.TeamSeason, error) {
	links, err := s.teamSeasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team-season links: %w", err)
	}
	return links, nil
}

func (s *teamSeasonService) GetByID(ctx context.Context, id int) (*models.TeamSeason, error) {
	link, err := s.teamSeasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamSeasonNotFound) {
			return nil, ErrTeamSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get team-season link %d: %w", id, err)
	}
	return link, nil
}

func (s *teamSeasonService) ListBySeason(ctx context.Context, seasonID int) ([]models.TeamSeason, error) {
	links, err := s.teamSeasonRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team-season links of season %d: %w", seasonID, err)
	}
	return links, nil
}

func (s *teamSeasonService) Create(ctx context.Context, input TeamSeasonInput) (*models.TeamSeason, error) {
	if input.TeamID == 0 || input.SeasonID == 0 {
		return nil, ErrTeamSeasonRefsRequired
	}

	link := &models.TeamSeason{
		TeamID:   input.TeamID,
		SeasonID: input.SeasonID,
	}

	if err := s.teamSeasonRepo.Create(ctx, link); err != nil {
		if errors.Is(err, repositories.ErrTeamSeasonConflict) {
			return nil, ErrTeamSeasonConflict
		}
		return nil, fmt.Errorf("failed to create team-season link: %w", err)
	}
	return link, nil
}

func (s *teamSeasonService) Delete(ctx context.Context, id int) error {
	if err := s.teamSeasonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamSeasonNotFound) {
			return ErrTeamSeasonNotFound
		}
		return fmt.Errorf("failed to delete team-season link %d: %w", id, err)
	}
	return nil
}
