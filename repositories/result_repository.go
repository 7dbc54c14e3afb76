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
	ErrResultNotFound = errors.New("result not found")
	ErrResultConflict = errors.New("result already registered for driver in race")
)

type ResultRepository interface {
	List(ctx context.Context) ([]models.Result, error)
	GetByID(ctx context.Context, id int) (*models.Result, error)
	ListByRace(ctx context.Context, raceID int) ([]models.Result, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Result, error)
	StandingsBySeason(ctx context.Context, seasonID int) (*models.SeasonStandings, error)
	Create(ctx context.Context, result *models.Result) error
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id int) error
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

const resultSelect = `
	SELECT r.id_resultado, r.id_corrida, r.id_piloto_equipe_temporada,
	       r.posicao_inicial, r.posicao_final, r.pontuacao, r.status_corrida,
	       c.nome_corrida, p.nome_piloto, e.nome_equipe, t.ano_temporada
	FROM resultados r
	JOIN corridas c ON r.id_corrida = c.id_corrida
	JOIN pilotos_equipes_temporadas pet ON r.id_piloto_equipe_temporada = pet.id_piloto_equipe_temporada
	JOIN pilotos p ON pet.id_piloto = p.id_piloto
	JOIN equipes_temporadas et ON pet.id_equipe_temporada = et.id_equipe_temporada
	JOIN equipes e ON et.id_equipe = e.id_equipe
	JOIN temporadas t ON et.id_temporada = t.id_temporada`

func (r *postgresResultRepository) List(ctx context.Context) ([]models.Result, error) {
	query := resultSelect + ` ORDER BY t.ano_temporada DESC, c.data_corrida, r.posicao_final`
	return r.queryResults(ctx, query)
}

func (r *postgresResultRepository) GetByID(ctx context.Context, id int) (*models.Result, error) {
	query := resultSelect + ` WHERE r.id_resultado = $1`

	result, err := scanResult(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to scan result: %w", err)
	}
	return result, nil
}

func (r *postgresResultRepository) ListByRace(ctx context.Context, raceID int) ([]models.Result, error) {
	query := resultSelect + ` WHERE r.id_corrida = $1 ORDER BY r.posicao_final`
	return r.queryResults(ctx, query, raceID)
}

// ListBySeason é o read model que o cliente montava com várias chamadas:
// todos os resultados da temporada com os rótulos já resolvidos.
func (r *postgresResultRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Result, error) {
	query := resultSelect + ` WHERE et.id_temporada = $1 ORDER BY c.data_corrida, r.posicao_final`
	return r.queryResults(ctx, query, seasonID)
}

func (r *postgresResultRepository) StandingsBySeason(ctx context.Context, seasonID int) (*models.SeasonStandings, error) {
	standings := &models.SeasonStandings{
		Drivers:      make([]models.DriverStanding, 0),
		Constructors: make([]models.TeamStanding, 0),
	}

	driverQuery := `
		SELECT p.id_piloto, p.nome_piloto,
		       COALESCE(SUM(r.pontuacao), 0),
		       COUNT(*) FILTER (WHERE r.posicao_final = 1)
		FROM resultados r
		JOIN pilotos_equipes_temporadas pet ON r.id_piloto_equipe_temporada = pet.id_piloto_equipe_temporada
		JOIN pilotos p ON pet.id_piloto = p.id_piloto
		JOIN equipes_temporadas et ON pet.id_equipe_temporada = et.id_equipe_temporada
		WHERE et.id_temporada = $1
		GROUP BY p.id_piloto, p.nome_piloto
		ORDER BY 3 DESC, p.nome_piloto`

	rows, err := r.db.QueryContext(ctx, driverQuery, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.DriverStanding
		if err := rows.Scan(&s.DriverID, &s.DriverName, &s.Points, &s.Wins); err != nil {
			return nil, err
		}
		standings.Drivers = append(standings.Drivers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	teamQuery := `
		SELECT e.id_equipe, e.nome_equipe,
		       COALESCE(SUM(r.pontuacao), 0),
		       COUNT(*) FILTER (WHERE r.posicao_final = 1)
		FROM resultados r
		JOIN pilotos_equipes_temporadas pet ON r.id_piloto_equipe_temporada = pet.id_piloto_equipe_temporada
		JOIN equipes_temporadas et ON pet.id_equipe_temporada = et.id_equipe_temporada
		JOIN equipes e ON et.id_equipe = e.id_equipe
		WHERE et.id_temporada = $1
		GROUP BY e.id_equipe, e.nome_equipe
		ORDER BY 3 DESC, e.nome_equipe`

	teamRows, err := r.db.QueryContext(ctx, teamQuery, seasonID)
	if err != nil {
		return nil, err
	}
	defer teamRows.Close()

	for teamRows.Next() {
		var s models.TeamStanding
		if err := teamRows.Scan(&s.TeamID, &s.TeamName, &s.Points, &s.Wins); err != nil {
			return nil, err
		}
		standings.Constructors = append(standings.Constructors, s)
	}
	return standings, teamRows.Err()
}

func (r *postgresResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO resultados (id_corrida, id_piloto_equipe_temporada, posicao_inicial, posicao_final, pontuacao, status_corrida)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_resultado`

	err := r.db.QueryRowContext(ctx, query,
		result.RaceID,
		result.DriverTeamSeasonID,
		result.StartPosition,
		result.FinalPosition,
		result.Points,
		result.Status,
	).Scan(&result.ID)

	if err != nil {
		return translateResultError(err)
	}
	return nil
}

// Update altera apenas os campos do desempenho; as referências à corrida e
// ao vínculo do piloto são imutáveis após o registro.
func (r *postgresResultRepository) Update(ctx context.Context, result *models.Result) error {
	query := `
		UPDATE resultados SET
			posicao_inicial = $1,
			posicao_final = $2,
			pontuacao = $3,
			status_corrida = $4
		WHERE id_resultado = $5`

	execResult, err := r.db.ExecContext(ctx, query,
		result.StartPosition,
		result.FinalPosition,
		result.Points,
		result.Status,
		result.ID,
	)
	if err != nil {
		return translateResultError(err)
	}

	rowsAffected, err := checkRowsAffected(execResult)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrResultNotFound
	}
	return nil
}

func (r *postgresResultRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resultados WHERE id_resultado = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := checkRowsAffected(result)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrResultNotFound
	}
	return nil
}

func (r *postgresResultRepository) queryResults(ctx context.Context, query string, args ...interface{}) ([]models.Result, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.Result, 0)
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

func scanResult(row rowScanner) (*models.Result, error) {
	var (
		result        models.Result
		startPosition sql.NullInt64
		finalPosition sql.NullInt64
		raceName      string
		driverName    string
		teamName      string
		seasonYear    int
	)

	err := row.Scan(
		&result.ID,
		&result.RaceID,
		&result.DriverTeamSeasonID,
		&startPosition,
		&finalPosition,
		&result.Points,
		&result.Status,
		&raceName,
		&driverName,
		&teamName,
		&seasonYear,
	)
	if err != nil {
		return nil, err
	}

	result.StartPosition = nullInt(startPosition)
	result.FinalPosition = nullInt(finalPosition)
	result.RaceName = &raceName
	result.DriverName = &driverName
	result.TeamName = &teamName
	result.SeasonYear = &seasonYear
	return &result, nil
}

func translateResultError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "resultados_corrida_piloto_key" {
		return ErrResultConflict
	}
	return err
}
