package domain

import (
	"time"

	"github.com/google/uuid"
)

// Professional é uma profissional do salão. Dados de referência, somente
// leitura do ponto de vista do fluxo de agendamento.
type Professional struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Specialties []string  `json:"specialties"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
