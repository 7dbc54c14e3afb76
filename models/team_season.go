package models

// TeamSeason registra a participação de uma equipe em uma temporada.
type TeamSeason struct {
	ID       int `json:"id_equipe_temporada"`
	TeamID   int `json:"id_equipe"`
	SeasonID int `json:"id_temporada"`

	// Rótulos das entidades referenciadas, preenchidos pelos joins de leitura.
	TeamName   *string `json:"nome_equipe,omitempty"`
	SeasonYear *int    `json:"ano_temporada,omitempty"`
}
