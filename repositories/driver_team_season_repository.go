package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/models"
	"github.com/lib/pq"
)

var (
	ErrDriverTeamSeasonNotFound = errors.New("driver-team-season link not found")
	ErrDriverTeamSeasonConflict = errors.New("driver already linked to team-season")
	ErrCarNumberConflict        = errors.New("car number already used in team-season")
)

type DriverTeamSeasonRepository interface {
	List(ctx context.Context) ([]models.DriverTeamSeason, error)
	GetByID(ctx context.Context, id int) (*models.DriverTeamSeason, error)
	ListByTeamSeason(ctx context.Context, teamSeasonID int) ([]models.DriverTeamSeason, error)
	Create(ctx context.Context, link *models.DriverTeamSeason) error
	UpdateCarNumber(ctx context.Context, id, carNumber int) error
	Delete(ctx context.Context, id int) error
}

type postgresDriverTeamSeasonRepository struct {
	db *sql.DB
}

func NewPostgresDriverTeamSeasonRepository(db *sql.DB) DriverTeamSeasonRepository {
	return &postgresDriverTeamSeasonRepository{db: db}
}

const driverTeamSeasonSelect = `
	SELECT pet.id_piloto_equipe_temporada, pet.id_piloto, pet.id_equipe_temporada, pet.numero_carro,
	       p.nome_piloto, e.nome_equipe, t.ano_temporada
	FROM pilotos_equipes_temporadas pet
	JOIN pilotos p ON pet.id_piloto = p.id_piloto
	JOIN equipes_temporadas et ON pet.id_equipe_temporada = et.id_equipe_temporada
	JOIN equipes e ON et.id_equipe = e.id_equipe
	JOIN temporadas t ON et.id_temporada = t.id_temporada`

func (r *postgresDriverTeamSeasonRepository) List(ctx context.Context) ([]models.DriverTeamSeason, error) {
	query := driverTeamSeasonSelect + ` ORDER BY t.ano_temporada DESC, e.nome_equipe, p.nome_piloto`
	return r.queryLinks(ctx, query)
}

func (r *postgresDriverTeamSeasonRepository) GetByID(ctx context.Context, id int) (*models.DriverTeamSeason, error) {
	query := driverTeamSeasonSelect + ` WHERE pet.id_piloto_equipe_temporada = $1`

	link, err := scanDriverTeamSeason(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDriverTeamSeasonNotFound
		}
		return nil, fmt.Errorf("failed to scan driver-team-season link: %w", err)
	}
	return link, nil
}

func (r *postgresDriverTeamSeasonRepository) ListByTeamSeason(ctx context.Context, teamSeasonID int) ([]models.DriverTeamSeason, error) {
	query := driverTeamSeasonSelect + ` WHERE pet.id_equipe_temporada = $1 ORDER BY p.nome_piloto`
	return r.queryLinks(ctx, query, teamSeasonID)
}

func (r *postgresDriverTeamSeasonRepository) Create(ctx context.Context, link *models.DriverTeamSeason) error {
	query := `
		INSERT INTO pilotos_equipes_temporadas (id_piloto, id_equipe_temporada, numero_carro)
		VALUES ($1, $2, $3)
		RETURNING id_piloto_equipe_temporada`

	err := r.db.QueryRowContext(ctx, query,
		link.DriverID,
		link.TeamSeasonID,
		link.CarNumber,
	).Scan(&link.ID)

	if err != nil {
		return translateDriverTeamSeasonError(err)
	}
	return nil
}

func (r *postgresDriverTeamSeasonRepository) UpdateCarNumber(ctx context.Context, id, carNumber int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pilotos_equipes_temporadas SET numero_carro = $1 WHERE id_piloto_equipe_temporada = $2`,
		carNumber, id)
	if err != nil {
		return translateDriverTeamSeasonError(err)
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDriverTeamSeasonNotFound
	}
	return nil
}

func (r *postgresDriverTeamSeasonRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM pilotos_equipes_temporadas WHERE id_piloto_equipe_temporada = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDriverTeamSeasonNotFound
	}
	return nil
}

func (r *postgresDriverTeamSeasonRepository) queryLinks(ctx context.Context, query string, args ...interface{}) ([]models.DriverTeamSeason, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]models.DriverTeamSeason, 0)
	for rows.Next() {
		link, err := scanDriverTeamSeason(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, rows.Err()
}

func scanDriverTeamSeason(row rowScanner) (*models.DriverTeamSeason, error) {
	var (
		link       models.DriverTeamSeason
		driverName string
		teamName   string
		seasonYear int
	)

	err := row.Scan(
		&link.ID,
		&link.DriverID,
		&link.TeamSeasonID,
		&link.CarNumber,
		&driverName,
		&teamName,
		&seasonYear,
	)
	if err != nil {
		return nil, err
	}

	link.DriverName = &driverName
	link.TeamName = &teamName
	link.SeasonYear = &seasonYear
	return &link, nil
}

func translateDriverTeamSeasonError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "pilotos_equipes_temporadas_piloto_key":
			return ErrDriverTeamSeasonConflict
		case "pilotos_equipes_temporadas_numero_carro_key":
			return ErrCarNumberConflict
		}
	}
	return err
}
