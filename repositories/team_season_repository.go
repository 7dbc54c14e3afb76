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
	ErrTeamSeasonNotFound = errors.New("team-season link not found")
	ErrTeamSeasonConflict = errors.New("team already linked to season")
)

type TeamSeasonRepository interface {
	List(ctx context.Context) ([]models.TeamSeason, error)
	GetByID(ctx context.Context, id int) (*models.TeamSeason, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.TeamSeason, error)
	Create(ctx context.Context, link *models.TeamSeason) error
	Delete(ctx context.Context, id int) error
}

type postgresTeamSeasonRepository struct {
	db *sql.DB
}

func NewPostgresTeamSeasonRepository(db *sql.DB) TeamSeasonRepository {
	return &postgresTeamSeasonRepository{db: db}
}

const teamSeasonSelect = `
	SELECT et.id_equipe_temporada, et.id_equipe, et.id_temporada, e.nome_equipe, t.ano_temporada
	FROM equipes_temporadas et
	JOIN equipes e ON et.id_equipe = e.id_equipe
	JOIN temporadas t ON et.id_temporada = t.id_temporada`

func (r *postgresTeamSeasonRepository) List(ctx context.Context) ([]models.TeamSeason, error) {
	query := teamSeasonSelect + ` ORDER BY t.ano_temporada DESC, e.nome_equipe`
	return r.queryLinks(ctx, query)
}

func (r *postgresTeamSeasonRepository) GetByID(ctx context.Context, id int) (*models.TeamSeason, error) {
	query := teamSeasonSelect + ` WHERE et.id_equipe_temporada = $1`

	link, err := scanTeamSeason(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamSeasonNotFound
		}
		return nil, fmt.Errorf("failed to scan team-season link: %w", err)
	}
	return link, nil
}

func (r *postgresTeamSeasonRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.TeamSeason, error) {
	query := teamSeasonSelect + ` WHERE et.id_temporada = $1 ORDER BY e.nome_equipe`
	return r.queryLinks(ctx, query, seasonID)
}

func (r *postgresTeamSeasonRepository) Create(ctx context.Context, link *models.TeamSeason) error {
	query := `
		INSERT INTO equipes_temporadas (id_equipe, id_temporada)
		VALUES ($1, $2)
		RETURNING id_equipe_temporada`

	err := r.db.QueryRowContext(ctx, query, link.TeamID, link.SeasonID).Scan(&link.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "equipes_temporadas_equipe_temporada_key" {
			return ErrTeamSeasonConflict
		}
		return err
	}
	return nil
}

func (r *postgresTeamSeasonRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM equipes_temporadas WHERE id_equipe_temporada = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeamSeasonNotFound
	}
	return nil
}

func (r *postgresTeamSeasonRepository) queryLinks(ctx context.Context, query string, args ...interface{}) ([]models.TeamSeason, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]models.TeamSeason, 0)
	for rows.Next() {
		link, err := scanTeamSeason(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, rows.Err()
}

func scanTeamSeason(row rowScanner) (*models.TeamSeason, error) {
	var (
		link       models.TeamSeason
		teamName   string
		seasonYear int
	)

	err := row.Scan(
		&link.ID,
		&link.TeamID,
		&link.SeasonID,
		&teamName,
		&seasonYear,
	)
	if err != nil {
		return nil, err
	}

	link.TeamName = &teamName
	link.SeasonYear = &seasonYear
	return &link, nil
}
