package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/models"
)

var ErrDriverNotFound = errors.New("driver not found")

type DriverRepository interface {
	List(ctx context.Context) ([]models.Driver, error)
	GetByID(ctx context.Context, id int) (*models.Driver, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Driver, error)
	Create(ctx context.Context, driver *models.Driver) error
	Update(ctx context.Context, driver *models.Driver) error
	UpdatePhotoURL(ctx context.Context, id int, url string) error
	Delete(ctx context.Context, id int) error
}

type postgresDriverRepository struct {
	db *sql.DB
}

func NewPostgresDriverRepository(db *sql.DB) DriverRepository {
	return &postgresDriverRepository{db: db}
}

const driverColumns = `id_piloto, nome_piloto, nacionalidade_piloto, data_nascimento_piloto, foto_piloto_url, descricao_piloto`

func (r *postgresDriverRepository) List(ctx context.Context) ([]models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM pilotos ORDER BY nome_piloto`
	return r.queryDrivers(ctx, query)
}

func (r *postgresDriverRepository) GetByID(ctx context.Context, id int) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM pilotos WHERE id_piloto = $1`

	driver, err := scanDriver(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to scan driver: %w", err)
	}
	return driver, nil
}

// ListBySeason retorna os pilotos com vínculo em alguma equipe da temporada.
func (r *postgresDriverRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Driver, error) {
	query := `
		SELECT p.id_piloto, p.nome_piloto, p.nacionalidade_piloto, p.data_nascimento_piloto, p.foto_piloto_url, p.descricao_piloto
		FROM pilotos p
		JOIN pilotos_equipes_temporadas pet ON p.id_piloto = pet.id_piloto
		JOIN equipes_temporadas et ON pet.id_equipe_temporada = et.id_equipe_temporada
		WHERE et.id_temporada = $1
		ORDER BY p.nome_piloto`
	return r.queryDrivers(ctx, query, seasonID)
}

func (r *postgresDriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO pilotos (nome_piloto, nacionalidade_piloto, data_nascimento_piloto, foto_piloto_url, descricao_piloto)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_piloto`

	return r.db.QueryRowContext(ctx, query,
		driver.Name,
		driver.Nationality,
		driver.BirthDate,
		driver.PhotoURL,
		driver.Description,
	).Scan(&driver.ID)
}

func (r *postgresDriverRepository) Update(ctx context.Context, driver *models.Driver) error {
	query := `
		UPDATE pilotos SET
			nome_piloto = $1,
			nacionalidade_piloto = $2,
			data_nascimento_piloto = $3,
			foto_piloto_url = $4,
			descricao_piloto = $5
		WHERE id_piloto = $6`

	result, err := r.db.ExecContext(ctx, query,
		driver.Name,
		driver.Nationality,
		driver.BirthDate,
		driver.PhotoURL,
		driver.Description,
		driver.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

func (r *postgresDriverRepository) UpdatePhotoURL(ctx context.Context, id int, url string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pilotos SET foto_piloto_url = $1 WHERE id_piloto = $2`, url, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

func (r *postgresDriverRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pilotos WHERE id_piloto = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

func (r *postgresDriverRepository) queryDrivers(ctx context.Context, query string, args ...interface{}) ([]models.Driver, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]models.Driver, 0)
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, *driver)
	}
	return drivers, rows.Err()
}

func scanDriver(row rowScanner) (*models.Driver, error) {
	var (
		driver      models.Driver
		nationality sql.NullString
		birthDate   sql.NullTime
		photoURL    sql.NullString
		description sql.NullString
	)

	err := row.Scan(
		&driver.ID,
		&driver.Name,
		&nationality,
		&birthDate,
		&photoURL,
		&description,
	)
	if err != nil {
		return nil, err
	}

	driver.Nationality = nullString(nationality)
	driver.BirthDate = nullDate(birthDate)
	driver.PhotoURL = nullString(photoURL)
	driver.Description = nullString(description)
	return &driver, nil
}
