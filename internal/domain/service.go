package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service é um item do catálogo oficial do salão. Dados de referência:
// o fluxo de agendamento nunca cria nem altera serviços.
type Service struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration_min"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateServiceDTO struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type UpdateServiceDTO struct {
	Name        *string  `json:"name"`
	DurationMin *int     `json:"duration_min" binding:"omitempty,gt=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}
