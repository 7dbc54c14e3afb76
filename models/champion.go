package models

// Champion guarda o campeão de pilotos (id_piloto preenchido) ou de
// construtores (id_equipe preenchido) de uma temporada, em linhas separadas.
type Champion struct {
	ID        int  `json:"id_campeao"`
	SeasonID  int  `json:"id_temporada"`
	DriverID  *int `json:"id_piloto"`
	TeamID    *int `json:"id_equipe"`
	TitleYear *int `json:"ano_campeao"`

	SeasonYear *int    `json:"ano_temporada,omitempty"`
	DriverName *string `json:"nome_piloto,omitempty"`
	TeamName   *string `json:"nome_equipe,omitempty"`
}
