package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/models"
)

var ErrRaceNotFound = errors.New("race not found")

type RaceRepository interface {
	List(ctx context.Context) ([]models.Race, error)
	GetByID(ctx context.Context, id int) (*models.Race, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Race, error)
	Create(ctx context.Context, race *models.Race) error
	Update(ctx context.Context, race *models.Race) error
	Delete(ctx context.Context, id int) error
}

type postgresRaceRepository struct {
	db *sql.DB
}

func NewPostgresRaceRepository(db *sql.DB) RaceRepository {
	return &postgresRaceRepository{db: db}
}

func (r *postgresRaceRepository) List(ctx context.Context) ([]models.Race, error) {
	query := `
		SELECT c.id_corrida, c.id_temporada, c.nome_corrida, c.local_corrida, c.data_corrida, t.ano_temporada
		FROM corridas c
		JOIN temporadas t ON c.id_temporada = t.id_temporada
		ORDER BY t.ano_temporada DESC, c.data_corrida`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	races := make([]models.Race, 0)
	for rows.Next() {
		race, err := scanRaceWithYear(rows)
		if err != nil {
			return nil, err
		}
		races = append(races, *race)
	}
	return races, rows.Err()
}

func (r *postgresRaceRepository) GetByID(ctx context.Context, id int) (*models.Race, error) {
	query := `
		SELECT c.id_corrida, c.id_temporada, c.nome_corrida, c.local_corrida, c.data_corrida, t.ano_temporada
		FROM corridas c
		JOIN temporadas t ON c.id_temporada = t.id_temporada
		WHERE c.id_corrida = $1`

	race, err := scanRaceWithYear(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to scan race: %w", err)
	}
	return race, nil
}

func (r *postgresRaceRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Race, error) {
	query := `
		SELECT id_corrida, id_temporada, nome_corrida, local_corrida, data_corrida
		FROM corridas
		WHERE id_temporada = $1
		ORDER BY data_corrida`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	races := make([]models.Race, 0)
	for rows.Next() {
		var (
			race     models.Race
			location sql.NullString
			date     sql.NullTime
		)
		if err := rows.Scan(&race.ID, &race.SeasonID, &race.Name, &location, &date); err != nil {
			return nil, err
		}
		race.Location = nullString(location)
		race.Date = nullDate(date)
		races = append(races, race)
	}
	return races, rows.Err()
}

func (r *postgresRaceRepository) Create(ctx context.Context, race *models.Race) error {
	query := `
		INSERT INTO corridas (id_temporada, nome_corrida, local_corrida, data_corrida)
		VALUES ($1, $2, $3, $4)
		RETURNING id_corrida`

	return r.db.QueryRowContext(ctx, query,
		race.SeasonID,
		race.Name,
		race.Location,
		race.Date,
	).Scan(&race.ID)
}

func (r *postgresRaceRepository) Update(ctx context.Context, race *models.Race) error {
	query := `
		UPDATE corridas SET
			nome_corrida = $1,
			local_corrida = $2,
			data_corrida = $3
		WHERE id_corrida = $4`

	result, err := r.db.ExecContext(ctx, query,
		race.Name,
		race.Location,
		race.Date,
		race.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRaceNotFound
	}
	return nil
}

func (r *postgresRaceRepository) Delete(ctx context.Context, id int) error {
	// Falha com violação de FK quando existem resultados da corrida; o
	// erro sobe intacto e vira 500 na borda HTTP.
	result, err := r.db.ExecContext(ctx, `DELETE FROM corridas WHERE id_corrida = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRaceNotFound
	}
	return nil
}

func scanRaceWithYear(row rowScanner) (*models.Race, error) {
	var (
		race     models.Race
		location sql.NullString
		date     sql.NullTime
		year     int
	)

	err := row.Scan(
		&race.ID,
		&race.SeasonID,
		&race.Name,
		&location,
		&date,
		&year,
	)
	if err != nil {
		return nil, err
	}

	race.Location = nullString(location)
	race.Date = nullDate(date)
	race.SeasonYear = &year
	return &race, nil
}
