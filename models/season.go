package models

type Season struct {
	ID        int     `json:"id_temporada"`
	Year      int     `json:"ano_temporada"`
	Status    string  `json:"status_temporada"`
	StartDate *Date   `json:"data_inicio_temporada"`
	EndDate   *Date   `json:"data_fim_temporada"`
	PhotoURL  *string `json:"foto_temporada_url"`
}

// SeasonSummary é o read model que substitui as buscas N+1 que o cliente
// fazia para montar a página de uma temporada.
type SeasonSummary struct {
	Season    *Season    `json:"temporada"`
	Races     []Race     `json:"corridas"`
	Teams     []Team     `json:"equipes"`
	Champions []Champion `json:"campeoes"`
}
