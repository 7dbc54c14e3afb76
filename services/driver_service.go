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

type DriverService interface {
	List(ctx context.Context) ([]models.Driver, error)
	GetByID(ctx context.Context, id int) (*models.Driver, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Driver, error)
	Create(ctx context.Context, input DriverInput) (*models.Driver, error)
	Update(ctx context.Context, id int, input DriverInput) (*models.Driver, error)
	UploadPhoto(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, id int) error
}

type DriverInput struct {
	Name        string       `json:"nome_piloto"`
	Nationality *string      `json:"nacionalidade_piloto"`
	BirthDate   *models.Date `json:"data_nascimento_piloto"`
	PhotoURL    *string      `json:"foto_piloto_url"`
	Description *string      `json:"descricao_piloto"`
}

type driverService struct {
	driverRepo repositories.DriverRepository
	uploader   storage.FileUploader
}

func NewDriverService(driverRepo repositories.DriverRepository, uploader storage.FileUploader) DriverService {
	return &driverService{driverRepo: driverRepo, uploader: uploader}
}

func (s *driverService) List(ctx context.Context) ([]models.Driver, error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

func (s *driverService) GetByID(ctx context.Context, id int) (*models.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDriverNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver %d: %w", id, err)
	}
	return driver, nil
}

func (s *driverService) ListBySeason(ctx context.Context, seasonID int) ([]models.Driver, error) {
	drivers, err := s.driverRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers of season %d: %w", seasonID, err)
	}
	return drivers, nil
}

func (s *driverService) Create(ctx context.Context, input DriverInput) (*models.Driver, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrDriverNameRequired
	}

	driver := &models.Driver{
		Name:        name,
		Nationality: input.Nationality,
		BirthDate:   input.BirthDate,
		PhotoURL:    input.PhotoURL,
		Description: input.Description,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return driver, nil
}

func (s *driverService) Update(ctx context.Context, id int, input DriverInput) (*models.Driver, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrDriverNameRequired
	}

	driver := &models.Driver{
		ID:          id,
		Name:        name,
		Nationality: input.Nationality,
		BirthDate:   input.BirthDate,
		PhotoURL:    input.PhotoURL,
		Description: input.Description,
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		if errors.Is(err, repositories.ErrDriverNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to update driver %d: %w", id, err)
	}
	return driver, nil
}

func (s *driverService) UploadPhoto(ctx context.Context, id int, filename, contentType string, r io.Reader) (string, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}

	url, err := uploadImage(ctx, s.uploader, "pilotos", id, filename, contentType, r)
	if err != nil {
		return "", err
	}

	if err := s.driverRepo.UpdatePhotoURL(ctx, id, url); err != nil {
		if errors.Is(err, repositories.ErrDriverNotFound) {
			return "", ErrDriverNotFound
		}
		return "", fmt.Errorf("failed to save driver photo URL: %w", err)
	}
	return url, nil
}

func (s *driverService) Delete(ctx context.Context, id int) error {
	if err := s.driverRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrDriverNotFound) {
			return ErrDriverNotFound
		}
		return fmt.Errorf("failed to delete driver %d: %w", id, err)
	}
	return nil
}
