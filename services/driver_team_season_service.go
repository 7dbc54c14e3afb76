package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
)

type DriverTeamSeasonService interface {
	List(ctx context.Context) ([]models.DriverTeamSeason, error)
	GetByID(ctx context.Context, id int) (*models.DriverTeamSeason, error)
	ListByTeamSeason(ctx context.Context, teamSeasonID int) ([]models.DriverTeamSeason, error)
	Create(ctx context.Context, input DriverTeamSeasonInput) (*models.DriverTeamSeason, error)
	UpdateCarNumber(ctx context.Context, id int, input CarNumberInput) error
	Delete(ctx context.Context, id int) error
}

// CarNumber é ponteiro porque o carro número 0 é válido; só a ausência
// do campo é rejeitada.
type DriverTeamSeasonInput struct {
	DriverID     int  `json:"id_piloto"`
	TeamSeasonID int  `json:"id_equipe_temporada"`
	CarNumber    *int `json:"numero_carro"`
}

type CarNumberInput struct {
	CarNumber *int `json:"numero_carro"`
}

type driverTeamSeasonService struct {
	linkRepo repositories.DriverTeamSeasonRepository
}

func NewDriverTeamSeasonService(linkRepo repositories.DriverTeamSeasonRepository) DriverTeamSeasonService {
	return &driverTeamSeasonService{linkRepo: linkRepo}
}

func (s *driverTeamSeasonService) List(ctx context.Context) ([]models.DriverTeamSeason, error) {
	links, err := s.linkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver-team-season links: %w", err)
	}
	return links, nil
}

func (s *driverTeamSeasonService) GetByID(ctx context.Context, id int) (*models.DriverTeamSeason, error) {
	link, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDriverTeamSeasonNotFound) {
			return nil, ErrDriverTeamSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get driver-team-season link %d: %w", id, err)
	}
	return link, nil
}

func (s *driverTeamSeasonService) ListByTeamSeason(ctx context.Context, teamSeasonID int) ([]models.DriverTeamSeason, error) {
	links, err := s.linkRepo.ListByTeamSeason(ctx, teamSeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers of team-season %d: %w", teamSeasonID, err)
	}
	return links, nil
}

func (s *driverTeamSeasonService) Create(ctx context.Context, input DriverTeamSeasonInput) (*models.DriverTeamSeason, error) {
	if input.DriverID == 0 || input.TeamSeasonID == 0 || input.CarNumber == nil {
		return nil, ErrDriverTeamSeasonRefsRequired
	}

	link := &models.DriverTeamSeason{
		DriverID:     input.DriverID,
		TeamSeasonID: input.TeamSeasonID,
		CarNumber:    *input.CarNumber,
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDriverTeamSeasonConflict):
			return nil, ErrDriverTeamSeasonConflict
		case errors.Is(err, repositories.ErrCarNumberConflict):
			return nil, ErrCarNumberConflict
		default:
			return nil, fmt.Errorf("failed to create driver-team-season link: %w", err)
		}
	}
	return link, nil
}

func (s *driverTeamSeasonService) UpdateCarNumber(ctx context.Context, id int, input CarNumberInput) error {
	if input.CarNumber == nil {
		return ErrDriverTeamSeasonRefsRequired
	}

	if err := s.linkRepo.UpdateCarNumber(ctx, id, *input.CarNumber); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDriverTeamSeasonNotFound):
			return ErrDriverTeamSeasonNotFound
		case errors.Is(err, repositories.ErrCarNumberConflict):
			return ErrCarNumberConflict
		default:
			return fmt.Errorf("failed to update car number of link %d: %w", id, err)
		}
	}
	return nil
}

func (s *driverTeamSeasonService) Delete(ctx context.Context, id int) error {
	if err := s.linkRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrDriverTeamSeasonNotFound) {
			return ErrDriverTeamSeasonNotFound
		}
		return fmt.Errorf("failed to delete driver-team-season link %d: %w", id, err)
	}
	return nil
}
