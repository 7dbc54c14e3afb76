package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gfmartins/racing-system/models"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	List(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	UpdateLogoURL(ctx context.Context, id int, url string) error
	Delete(ctx context.Context, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id_equipe, nome_equipe, fundacao_equipe, logo_equipe_url, descricao_equipe`

func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM equipes ORDER BY nome_equipe`
	return r.queryTeams(ctx, query)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM equipes WHERE id_equipe = $1`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}
	return team, nil
}

// ListBySeason retorna as equipes participantes de uma temporada, via o
// vínculo equipes_temporadas.
func (r *postgresTeamRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error) {
	query := `
		SELECT e.id_equipe, e.nome_equipe, e.fundacao_equipe, e.logo_equipe_url, e.descricao_equipe
		FROM equipes e
		JOIN equipes_temporadas et ON e.id_equipe = et.id_equipe
		WHERE et.id_temporada = $1
		ORDER BY e.nome_equipe`
	return r.queryTeams(ctx, query, seasonID)
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO equipes (nome_equipe, fundacao_equipe, logo_equipe_url, descricao_equipe)
		VALUES ($1, $2, $3, $4)
		RETURNING id_equipe`

	return r.db.QueryRowContext(ctx, query,
		team.Name,
		team.FoundedAt,
		team.LogoURL,
		team.Description,
	).Scan(&team.ID)
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE equipes SET
			nome_equipe = $1,
			fundacao_equipe = $2,
			logo_equipe_url = $3,
			descricao_equipe = $4
		WHERE id_equipe = $5`

	result, err := r.db.ExecContext(ctx, query,
		team.Name,
		team.FoundedAt,
		team.LogoURL,
		team.Description,
		team.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *postgresTeamRepository) UpdateLogoURL(ctx context.Context, id int, url string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE equipes SET logo_equipe_url = $1 WHERE id_equipe = $2`, url, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM equipes WHERE id_equipe = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *postgresTeamRepository) queryTeams(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	return teams, rows.Err()
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var (
		team        models.Team
		foundedAt   sql.NullTime
		logoURL     sql.NullString
		description sql.NullString
	)

	err := row.Scan(
		&team.ID,
		&team.Name,
		&foundedAt,
		&logoURL,
		&description,
	)
	if err != nil {
		return nil, err
	}

	team.FoundedAt = nullDate(foundedAt)
	team.LogoURL = nullString(logoURL)
	team.Description = nullString(description)
	return &team, nil
}
