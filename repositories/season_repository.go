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
	ErrSeasonNotFound     = errors.New("season not found")
	ErrSeasonYearConflict = errors.New("season year conflict")
)

type SeasonRepository interface {
	List(ctx context.Context) ([]models.Season, error)
	GetByID(ctx context.Context, id int) (*models.Season, error)
	GetByYear(ctx context.Context, year int) (*models.Season, error)
	Create(ctx context.Context, season *models.Season) error
	Update(ctx context.Context, season *models.Season) error
	UpdatePhotoURL(ctx context.Context, id int, url string) error
	Delete(ctx context.Context, id int) error
}

type postgresSeasonRepository struct {
	db *sql.DB
}

func NewPostgresSeasonRepository(db *sql.DB) SeasonRepository {
	return &postgresSeasonRepository{db: db}
}

const seasonColumns = `id_temporada, ano_temporada, status_temporada, data_inicio_temporada, data_fim_temporada, foto_temporada_url`

func (r *postgresSeasonRepository) List(ctx context.Context) ([]models.Season, error) {
	query := `SELECT ` + seasonColumns + ` FROM temporadas ORDER BY ano_temporada DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seasons := make([]models.Season, 0)
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, *season)
	}
	return seasons, rows.Err()
}

func (r *postgresSeasonRepository) GetByID(ctx context.Context, id int) (*models.Season, error) {
	query := `SELECT ` + seasonColumns + ` FROM temporadas WHERE id_temporada = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresSeasonRepository) GetByYear(ctx context.Context, year int) (*models.Season, error) {
	query := `SELECT ` + seasonColumns + ` FROM temporadas WHERE ano_temporada = $1`
	return r.getOne(ctx, query, year)
}

func (r *postgresSeasonRepository) Create(ctx context.Context, season *models.Season) error {
	query := `
		INSERT INTO temporadas (ano_temporada, status_temporada, data_inicio_temporada, data_fim_temporada, foto_temporada_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_temporada`

	err := r.db.QueryRowContext(ctx, query,
		season.Year,
		season.Status,
		season.StartDate,
		season.EndDate,
		season.PhotoURL,
	).Scan(&season.ID)

	if err != nil {
		return translateSeasonError(err)
	}
	return nil
}

func (r *postgresSeasonRepository) Update(ctx context.Context, season *models.Season) error {
	query := `
		UPDATE temporadas SET
			ano_temporada = $1,
			status_temporada = $2,
			data_inicio_temporada = $3,
			data_fim_temporada = $4,
			foto_temporada_url = $5
		WHERE id_temporada = $6`

	result, err := r.db.ExecContext(ctx, query,
		season.Year,
		season.Status,
		season.StartDate,
		season.EndDate,
		season.PhotoURL,
		season.ID,
	)
	if err != nil {
		return translateSeasonError(err)
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (r *postgresSeasonRepository) UpdatePhotoURL(ctx context.Context, id int, url string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE temporadas SET foto_temporada_url = $1 WHERE id_temporada = $2`, url, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (r *postgresSeasonRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM temporadas WHERE id_temporada = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (r *postgresSeasonRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Season, error) {
	season, err := scanSeason(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to scan season: %w", err)
	}
	return season, nil
}

func scanSeason(row rowScanner) (*models.Season, error) {
	var (
		season    models.Season
		startDate sql.NullTime
		endDate   sql.NullTime
		photoURL  sql.NullString
	)

	err := row.Scan(
		&season.ID,
		&season.Year,
		&season.Status,
		&startDate,
		&endDate,
		&photoURL,
	)
	if err != nil {
		return nil, err
	}

	season.StartDate = nullDate(startDate)
	season.EndDate = nullDate(endDate)
	season.PhotoURL = nullString(photoURL)
	return &season, nil
}

func translateSeasonError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "temporadas_ano_temporada_key" {
		return ErrSeasonYearConflict
	}
	return err
}
