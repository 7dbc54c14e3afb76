package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/live"
	"github.com/gfmartins/racing-system/models"
	"github.com/gfmartins/racing-system/repositories"
)

type ResultService interface {
	List(ctx context.Context) ([]models.Result, error)
	GetByID(ctx context.Context, id int) (*models.Result, error)
	Create(ctx context.Context, input ResultInput) (*models.Result, error)
	Update(ctx context.Context, id int, input ResultInput) (*models.Result, error)
	Delete(ctx context.Context, id int) error
}

type ResultInput struct {
	RaceID             int     `json:"id_corrida"`
	DriverTeamSeasonID int     `json:"id_piloto_equipe_temporada"`
	StartPosition      *int    `json:"posicao_inicial"`
	FinalPosition      *int    `json:"posicao_final"`
	Points             float64 `json:"pontuacao"`
	Status             string  `json:"status_corrida"`
}

type resultService struct {
	resultRepo repositories.ResultRepository
	hub        *live.Hub
}

func NewResultService(resultRepo repositories.ResultRepository, hub *live.Hub) ResultService {
	return &resultService{resultRepo: resultRepo, hub: hub}
}

func (s *resultService) List(ctx context.Context) ([]models.Result, error) {
	results, err := s.resultRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

func (s *resultService) GetByID(ctx context.Context, id int) (*models.Result, error) {
	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result %d: %w", id, err)
	}
	return result, nil
}

func (s *resultService) Create(ctx context.Context, input ResultInput) (*models.Result, error) {
	if input.RaceID == 0 || input.DriverTeamSeasonID == 0 ||
		input.StartPosition == nil || input.FinalPosition == nil || input.Status == "" {
		return nil, ErrResultFieldsRequired
	}

	result := &models.Result{
		RaceID:             input.RaceID,
		DriverTeamSeasonID: input.DriverTeamSeasonID,
		StartPosition:      input.StartPosition,
		FinalPosition:      input.FinalPosition,
		Points:             input.Points,
		Status:             input.Status,
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		if errors.Is(err, repositories.ErrResultConflict) {
			return nil, ErrResultConflict
		}
		return nil, fmt.Errorf("failed to create result: %w", err)
	}

	s.broadcast(live.EventResultCreated, result)
	return result, nil
}

func (s *resultService) Update(ctx context.Context, id int, input ResultInput) (*models.Result, error) {
	result := &models.Result{
		ID:            id,
		StartPosition: input.StartPosition,
		FinalPosition: input.FinalPosition,
		Points:        input.Points,
		Status:        input.Status,
	}

	if err := s.resultRepo.Update(ctx, result); err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to update result %d: %w", id, err)
	}

	// Recarrega para obter a corrida e os rótulos antes de avisar a sala.
	updated, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload result %d: %w", id, err)
	}

	s.broadcast(live.EventResultUpdated, updated)
	return updated, nil
}

func (s *resultService) Delete(ctx context.Context, id int) error {
	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return ErrResultNotFound
		}
		return fmt.Errorf("failed to get result %d: %w", id, err)
	}

	if err := s.resultRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrResultNotFound) {
			return ErrResultNotFound
		}
		return fmt.Errorf("failed to delete result %d: %w", id, err)
	}

	s.broadcast(live.EventResultDeleted, result)
	return nil
}

func (s *resultService) broadcast(event string, result *models.Result) {
	if s.hub == nil {
		return
	}
	room := live.RaceRoom(result.RaceID)
	s.hub.BroadcastToRoom(room, live.Message{
		Type:    event,
		Payload: result,
		Room:    room,
	})
}
