package services

import "errors"

// Erros compartilhados entre serviços, mapeados para HTTP na borda.
var (
	// Validação de entrada
	ErrUserFieldsRequired           = errors.New("user name, email and password are required")
	ErrUserNameEmailRequired        = errors.New("user name and email are required")
	ErrSeasonYearRequired           = errors.New("season year is required")
	ErrTeamNameRequired             = errors.New("team name is required")
	ErrDriverNameRequired           = errors.New("driver name is required")
	ErrTeamSeasonRefsRequired       = errors.New("team and season references are required")
	ErrDriverTeamSeasonRefsRequired = errors.New("driver, team-season and car number are required")
	ErrRaceFieldsRequired           = errors.New("race season and name are required")
	ErrResultFieldsRequired         = errors.New("result race, driver-team-season, positions and status are required")
	ErrChampionRefsRequired         = errors.New("champion season and driver or team references are required")
	ErrChampionUpdateRefRequired    = errors.New("driver or team reference is required for update")
	ErrChampionRefsExclusive        = errors.New("champion references a driver or a team, never both")

	// Conflitos de unicidade
	ErrUserEmailConflict        = errors.New("email address is already registered")
	ErrSeasonYearConflict       = errors.New("season year is already registered")
	ErrTeamSeasonConflict       = errors.New("team is already registered in this season")
	ErrDriverTeamSeasonConflict = errors.New("driver is already registered in this team-season")
	ErrCarNumberConflict        = errors.New("car number is already used in this team-season")
	ErrResultConflict           = errors.New("result already registered for this driver in this race")
	ErrChampionConflict         = errors.New("champion already registered for this season")

	// Não encontrado
	ErrUserNotFound             = errors.New("user not found")
	ErrSeasonNotFound           = errors.New("season not found")
	ErrTeamNotFound             = errors.New("team not found")
	ErrDriverNotFound           = errors.New("driver not found")
	ErrTeamSeasonNotFound       = errors.New("team-season link not found")
	ErrDriverTeamSeasonNotFound = errors.New("driver-team-season link not found")
	ErrRaceNotFound             = errors.New("race not found")
	ErrResultNotFound           = errors.New("result not found")
	ErrChampionNotFound         = errors.New("champion not found")

	// Infraestrutura
	ErrUploadsDisabled = errors.New("image uploads are not configured")
)
