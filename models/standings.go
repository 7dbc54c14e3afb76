package models

type DriverStanding struct {
	DriverID   int     `json:"id_piloto"`
	DriverName string  `json:"nome_piloto"`
	Points     float64 `json:"pontuacao"`
	Wins       int     `json:"vitorias"`
}

type TeamStanding struct {
	TeamID   int     `json:"id_equipe"`
	TeamName string  `json:"nome_equipe"`
	Points   float64 `json:"pontuacao"`
	Wins     int     `json:"vitorias"`
}

// SeasonStandings soma a pontuação dos resultados de uma temporada por
// piloto e por equipe.
type SeasonStandings struct {
	Drivers      []DriverStanding `json:"pilotos"`
	Constructors []TeamStanding   `json:"construtores"`
}
