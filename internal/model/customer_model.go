package model

import "time"

type Customer struct {
	CustomerID   int64      `json:"customerid"`
	Email        string     `json:"email"`
	Fullname     *string    `json:"fullname,omitempty"`
	CPF          *string    `json:"cpf,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
