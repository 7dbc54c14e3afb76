package models

import "time"

type User struct {
	ID           int       `json:"id_usuario"`
	Name         string    `json:"nome_usuario"`
	Email        string    `json:"email_usuario"`
	PasswordHash string    `json:"-"`
	RegisteredAt time.Time `json:"cadastro_usuario"`
}
