package models

type Driver struct {
	ID          int     `json:"id_piloto"`
	Name        string  `json:"nome_piloto"`
	Nationality *string `json:"nacionalidade_piloto"`
	BirthDate   *Date   `json:"data_nascimento_piloto"`
	PhotoURL    *string `json:"foto_piloto_url"`
	Description *string `json:"descricao_piloto"`
}
