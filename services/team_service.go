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
)

type TeamService interface {
	List(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error)
	Create(ctx context.Context, input TeamInput) (*models.Team, error)
	Update(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	UploadLogo(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, id int) error
}

type TeamInput struct {
	Name        string       `json:"nome_equipe"`
	FoundedAt   *models.Date `json:"fundacao_equipe"`
	LogoURL     *string      `json:"logo_equipe_url"`
	Description *string      `json:"descricao_equipe"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, uploader storage.FileUploader) TeamService {
	return &teamService{teamRepo: teamRepo, uploader: uploader}
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error) {
	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of season %d: %w", seasonID, err)
	}
	return teams, nil
}

func (s *teamService) Create(ctx context.Context, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		Name:        name,
		FoundedAt:   input.FoundedAt,
		LogoURL:     input.LogoURL,
		Description: input.Description,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) Update(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		ID:          id,
		Name:        name,
		FoundedAt:   input.FoundedAt,
		LogoURL:     input.LogoURL,
		Description: input.Description,
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) UploadLogo(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}

	url, err := uploadImage(ctx, s.uploader, "equipes", id, filename, contentType, r)
	if err != nil {
		return "", err
	}

	if err := s.teamRepo.UpdateLogoURL(ctx, id, url); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return "", ErrTeamNotFound
		}
		return "", fmt.Errorf("failed to save team logo URL: %w", err)
	}
	return url, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return nil
}
