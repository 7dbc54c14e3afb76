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
	ErrChampionNotFound = errors.New("champion not found")
	ErrChampionConflict = errors.New("champion already registered for season")
)

type ChampionRepository interface {
	List(ctx context.Context) ([]models.Champion, error)
	GetByID(ctx context.Context, id int) (*models.Champion, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Champion, error)
	Create(ctx context.Context, champion *models.Champion) error
	Update(ctx context.Context, champion *models.Champion) error
	Delete(ctx context.Context, id int) error
}

type postgresChampionRepository struct {
	db *sql.DB
}

func NewPostgresChampionRepository(db *sql.DB) ChampionRepository {
	return &postgresChampionRepository{db: db}
}

const championSelect = `
	SELECT c.id_campeao, c.id_temporada, c.id_piloto, c.id_equipe, c.ano_campeao,
	       t.ano_temporada, p.nome_piloto, e.nome_equipe
	FROM campeoes c
	LEFT JOIN temporadas t ON c.id_temporada = t.id_temporada
	LEFT JOIN pilotos p ON c.id_piloto = p.id_piloto
	LEFT JOIN equipes e ON c.id_equipe = e.id_equipe`

func (r *postgresChampionRepository) List(ctx context.Context) ([]models.Champion, error) {
	query := championSelect + ` ORDER BY t.ano_temporada DESC`
	return r.queryChampions(ctx, query)
}

func (r *postgresChampionRepository) GetByID(ctx context.Context, id int) (*models.Champion, error) {
	query := championSelect + ` WHERE c.id_campeao = $1`

	champion, err := scanChampion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionNotFound
		}
		return nil, fmt.Errorf("failed to scan champion: %w", err)
	}
	return champion, nil
}

func (r *postgresChampionRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Champion, error) {
	query := championSelect + ` WHERE c.id_temporada = $1`
	return r.queryChampions(ctx, query, seasonID)
}

func (r *postgresChampionRepository) Create(ctx context.Context, champion *models.Champion) error {
	query := `
		INSERT INTO campeoes (id_temporada, id_piloto, id_equipe, ano_campeao)
		VALUES ($1, $2, $3, $4)
		RETURNING id_campeao`

	err := r.db.QueryRowContext(ctx, query,
		champion.SeasonID,
		champion.DriverID,
		champion.TeamID,
		champion.TitleYear,
	).Scan(&champion.ID)

	if err != nil {
		return translateChampionError(err)
	}
	return nil
}

func (r *postgresChampionRepository) Update(ctx context.Context, champion *models.Champion) error {
	query := `
		UPDATE campeoes SET
			id_piloto = $1,
			id_equipe = $2,
			ano_campeao = $3
		WHERE id_campeao = $4`

	result, err := r.db.ExecContext(ctx, query,
		champion.DriverID,
		champion.TeamID,
		champion.TitleYear,
		champion.ID,
	)
	if err != nil {
		return translateChampionError(err)
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrChampionNotFound
	}
	return nil
}

func (r *postgresChampionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM campeoes WHERE id_campeao = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrChampionNotFound
	}
	return nil
}

func (r *postgresChampionRepository) queryChampions(ctx context.Context, query string, args ...interface{}) ([]models.Champion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	champions := make([]models.Champion, 0)
	for rows.Next() {
		champion, err := scanChampion(rows)
		if err != nil {
			return nil, err
		}
		champions = append(champions, *champion)
	}
	return champions, rows.Err()
}

func scanChampion(row rowScanner) (*models.Champion, error) {
	var (
		champion   models.Champion
		driverID   sql.NullInt64
		teamID     sql.NullInt64
		titleYear  sql.NullInt64
		seasonYear sql.NullInt64
		driverName sql.NullString
		teamName   sql.NullString
	)

	err := row.Scan(
		&champion.ID,
		&champion.SeasonID,
		&driverID,
		&teamID,
		&titleYear,
		&seasonYear,
		&driverName,
		&teamName,
	)
	if err != nil {
		return nil, err
	}

	champion.DriverID = nullInt(driverID)
	champion.TeamID = nullInt(teamID)
	champion.TitleYear = nullInt(titleYear)
	champion.SeasonYear = nullInt(seasonYear)
	champion.DriverName = nullString(driverName)
	champion.TeamName = nullString(teamName)
	return &champion, nil
}

func translateChampionError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "campeoes_temporada_piloto_key", "campeoes_temporada_equipe_key":
			return ErrChampionConflict
		}
	}
	return err
}
