package models

// RaceStatus guarda os valores esperados de status_corrida. A coluna é texto
// livre, como no restante do modelo; as constantes existem para os defaults.
const (
	RaceStatusFinished = "Completou"
	RaceStatusRetired  = "Abandonou"
)

type Result struct {
	ID                 int     `json:"id_resultado"`
	RaceID             int     `json:"id_corrida"`
	DriverTeamSeasonID int     `json:"id_piloto_equipe_temporada"`
	StartPosition      *int    `json:"posicao_inicial"`
	FinalPosition      *int    `json:"posicao_final"`
	Points             float64 `json:"pontuacao"`
	Status             string  `json:"status_corrida"`

	RaceName   *string `json:"nome_corrida,omitempty"`
	DriverName *string `json:"nome_piloto,omitempty"`
	TeamName   *string `json:"nome_equipe,omitempty"`
	SeasonYear *int    `json:"ano_temporada,omitempty"`
}
