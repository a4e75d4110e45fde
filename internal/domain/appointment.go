package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment é um agendamento persistido. ServiceID guarda o serviço
// principal (coluna legada), carregado em Service nas leituras; Services traz
// a lista completa vinda da tabela de junção. TotalDuration é sempre a soma
// das durações dos serviços vinculados.
type Appointment struct {
	ID             uuid.UUID `json:"id"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email,omitempty"`
	ClientPhone    string    `json:"client_phone"`
	StartsAt       time.Time `json:"starts_at"`
	Time           string    `json:"time"`
	UserID         uuid.UUID `json:"user_id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	ServiceID      uuid.UUID `json:"service_id"`
	TotalDuration  int       `json:"total_duration"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Professional *Professional `json:"professional,omitempty"`
	Service      *Service      `json:"service,omitempty"`
	Services     []Service     `json:"services,omitempty"`
}

// CreateAppointmentDTO é o pedido de agendamento aceito pelo núcleo,
// independente do canal (formulário ou assistente). ServiceID é o campo
// legado de serviço único; quando ServiceIDs vem vazio ele vira a lista.
type CreateAppointmentDTO struct {
	ClientName     string      `json:"client_name" binding:"required"`
	ClientEmail    string      `json:"client_email" binding:"omitempty,email"`
	ClientPhone    string      `json:"client_phone" binding:"required"`
	ProfessionalID uuid.UUID   `json:"professional_id" binding:"required"`
	Date           string      `json:"date" binding:"required"`
	Time           string      `json:"time" binding:"required"`
	ServiceID      *uuid.UUID  `json:"service_id"`
	ServiceIDs     []uuid.UUID `json:"service_ids"`
	UserID         *uuid.UUID  `json:"user_id"`
}
