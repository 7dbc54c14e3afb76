package models

type Race struct {
	ID       int     `json:"id_corrida"`
	SeasonID int     `json:"id_temporada"`
	Name     string  `json:"nome_corrida"`
	Location *string `json:"local_corrida"`
	Date     *Date   `json:"data_corrida"`

	SeasonYear *int `json:"ano_temporada,omitempty"`
}
