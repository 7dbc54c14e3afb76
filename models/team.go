package models

type Team struct {
	ID          int     `json:"id_equipe"`
	Name        string  `json:"nome_equipe"`
	FoundedAt   *Date   `json:"fundacao_equipe"`
	LogoURL     *string `json:"logo_equipe_url"`
	Description *string `json:"descricao_equipe"`
}
