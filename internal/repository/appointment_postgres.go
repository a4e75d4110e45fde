package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"nailspro/internal/domain"
)

type AppointmentRepo struct {
	db DB
}

func NewAppointmentRepository(db DB) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

const uniqueViolationCode = "23505"

func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment, serviceIDs []uuid.UUID) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// Pré-checagem de conflito no instante exato. A restrição UNIQUE
	// (professional_id, starts_at) continua sendo a garantia real contra
	// corrida entre requisições concorrentes.
	checkQuery := `
		SELECT COUNT(*)
		FROM appointments
		WHERE professional_id = $1
		AND starts_at = $2
	`

	var count int
	err = tx.QueryRow(ctx, checkQuery, appt.ProfessionalID, appt.StartsAt).Scan(&count)
	if err != nil {
		return uuid.Nil, fmt.Errorf("erro ao verificar disponibilidade do horário: %w", err)
	}

	if count > 0 {
		return uuid.Nil, domain.ErrConflict
	}

	insertQuery := `
		INSERT INTO appointments (id, client_name, client_email, client_phone, starts_at, time, user_id, professional_id, service_id, total_duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id
	`

	id := uuid.New()
	now := time.Now()
	err = tx.QueryRow(ctx, insertQuery,
		id,
		appt.ClientName,
		appt.ClientEmail,
		appt.ClientPhone,
		appt.StartsAt,
		appt.Time,
		appt.UserID,
		appt.ProfessionalID,
		appt.ServiceID,
		appt.TotalDuration,
		now,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return uuid.Nil, domain.ErrConflict
		}
		return uuid.Nil, fmt.Errorf("erro ao criar agendamento: %w", err)
	}

	linkQuery := `
		INSERT INTO appointment_services (appointment_id, service_id)
		VALUES ($1, $2)
	`

	for _, serviceID := range serviceIDs {
		if _, err := tx.Exec(ctx, linkQuery, id, serviceID); err != nil {
			return uuid.Nil, fmt.Errorf("erro ao vincular serviço ao agendamento: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("erro ao finalizar transação: %w", err)
	}

	return id, nil
}

const appointmentColumns = `a.id, a.client_name, a.client_email, a.client_phone, a.starts_at, a.time, a.user_id, a.professional_id, a.service_id, a.total_duration, a.created_at, a.updated_at,
	       p.id, p.name, p.specialties, COALESCE(p.photo_url, ''), p.created_at, p.updated_at,
	       s.id, s.code, s.name, s.duration_min, s.price, s.created_at, s.updated_at`

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	var p domain.Professional
	var s domain.Service

	err := row.Scan(
		&a.ID,
		&a.ClientName,
		&a.ClientEmail,
		&a.ClientPhone,
		&a.StartsAt,
		&a.Time,
		&a.UserID,
		&a.ProfessionalID,
		&a.ServiceID,
		&a.TotalDuration,
		&a.CreatedAt,
		&a.UpdatedAt,
		&p.ID,
		&p.Name,
		&p.Specialties,
		&p.PhotoURL,
		&p.CreatedAt,
		&p.UpdatedAt,
		&s.ID,
		&s.Code,
		&s.Name,
		&s.DurationMin,
		&s.Price,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Professional = &p
	a.Service = &s
	return &a, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		JOIN professionals p ON a.professional_id = p.id
		JOIN services s ON a.service_id = s.id
		WHERE a.id = $1
	`, appointmentColumns)

	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("agendamento %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar agendamento: %w", err)
	}

	services, err := r.servicesByAppointment(ctx, []uuid.UUID{appointment.ID})
	if err != nil {
		return nil, err
	}
	appointment.Services = services[appointment.ID]

	return appointment, nil
}

func (r *AppointmentRepo) GetByProfessionalAndTime(ctx context.Context, professionalID uuid.UUID, startsAt time.Time) (*domain.Appointment, error) {
	query := `
		SELECT id, client_name, client_email, client_phone, starts_at, time, user_id, professional_id, service_id, total_duration, created_at, updated_at
		FROM appointments
		WHERE professional_id = $1
		AND starts_at = $2
	`

	var a domain.Appointment
	err := r.db.QueryRow(ctx, query, professionalID, startsAt).Scan(
		&a.ID,
		&a.ClientName,
		&a.ClientEmail,
		&a.ClientPhone,
		&a.StartsAt,
		&a.Time,
		&a.UserID,
		&a.ProfessionalID,
		&a.ServiceID,
		&a.TotalDuration,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar agendamento por horário: %w", err)
	}

	return &a, nil
}

func (r *AppointmentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments a
		JOIN professionals p ON a.professional_id = p.id
		JOIN services s ON a.service_id = s.id
		WHERE a.starts_at >= $1
		AND a.starts_at <= $2
		ORDER BY a.starts_at ASC
	`, appointmentColumns)

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agendamentos: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha de agendamento: %w", err)
		}
		appointments = append(appointments, *appointment)
		ids = append(ids, appointment.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer agendamentos: %w", err)
	}

	services, err := r.servicesByAppointment(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range appointments {
		appointments[i].Services = services[appointments[i].ID]
	}

	return appointments, nil
}

// servicesByAppointment carrega, de uma vez, os serviços vinculados de um
// conjunto de agendamentos.
func (r *AppointmentRepo) servicesByAppointment(ctx context.Context, appointmentIDs []uuid.UUID) (map[uuid.UUID][]domain.Service, error) {
	result := make(map[uuid.UUID][]domain.Service)
	if len(appointmentIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT aps.appointment_id, s.id, s.code, s.name, s.duration_min, s.price, s.created_at, s.updated_at
		FROM appointment_services aps
		JOIN services s ON aps.service_id = s.id
		WHERE aps.appointment_id = ANY($1)
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, appointmentIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar serviços dos agendamentos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var appointmentID uuid.UUID
		var s domain.Service
		if err := rows.Scan(
			&appointmentID,
			&s.ID,
			&s.Code,
			&s.Name,
			&s.DurationMin,
			&s.Price,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler serviço vinculado: %w", err)
		}
		result[appointmentID] = append(result[appointmentID], s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer serviços vinculados: %w", err)
	}

	return result, nil
}
