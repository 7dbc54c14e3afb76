package models

// DriverTeamSeason vincula um piloto a uma participação equipe-temporada,
// com o número do carro usado naquele vínculo.
type DriverTeamSeason struct {
	ID           int `json:"id_piloto_equipe_temporada"`
	DriverID     int `json:"id_piloto"`
	TeamSeasonID int `json:"id_equipe_temporada"`
	CarNumber    int `json:"numero_carro"`

	DriverName *string `json:"nome_piloto,omitempty"`
	TeamName   *string `json:"nome_equipe,omitempty"`
	SeasonYear *int    `json:"ano_temporada,omitempty"`
}
