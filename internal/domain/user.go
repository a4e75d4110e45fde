package domain

import (
	"time"

	"github.com/google/uuid"
)

// User é uma conta do painel do salão. O assistente de agenda usa a conta
// mais antiga como dona dos agendamentos criados via chat.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"-"`
}

type UpdateUserDTO struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}
