package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nailspro/internal/domain"
)

func newAppointmentMock(t *testing.T) (pgxmock.PgxPoolIface, *AppointmentRepo) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewAppointmentRepository(mock)
}

func sampleAppointment() domain.Appointment {
	return domain.Appointment{
		ClientName:     "Maria",
		ClientPhone:    "+5511999999999",
		StartsAt:       time.Date(2025, 11, 24, 14, 0, 0, 0, time.Local),
		Time:           "14:00",
		UserID:         uuid.New(),
		ProfessionalID: uuid.New(),
		ServiceID:      uuid.New(),
		TotalDuration:  80,
	}
}

func TestAppointmentRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("insere agendamento e vínculos na mesma transação", func(t *testing.T) {
		mock, repo := newAppointmentMock(t)
		appt := sampleAppointment()
		linkedServices := []uuid.UUID{appt.ServiceID, uuid.New()}

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(appt.ProfessionalID, appt.StartsAt).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO appointments").
			WithArgs(pgxmock.AnyArg(), appt.ClientName, appt.ClientEmail, appt.ClientPhone,
				appt.StartsAt, appt.Time, appt.UserID, appt.ProfessionalID, appt.ServiceID,
				appt.TotalDuration, pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		for _, serviceID := range linkedServices {
			mock.ExpectExec("INSERT INTO appointment_services").
				WithArgs(pgxmock.AnyArg(), serviceID).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()
		mock.ExpectRollback()

		id, err := repo.Create(ctx, appt, linkedServices)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("horário ocupado devolve conflito sem inserir", func(t *testing.T) {
		mock, repo := newAppointmentMock(t)
		appt := sampleAppointment()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(appt.ProfessionalID, appt.StartsAt).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, appt, []uuid.UUID{appt.ServiceID})
		assert.ErrorIs(t, err, domain.ErrConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("violação da restrição única vira conflito", func(t *testing.T) {
		mock, repo := newAppointmentMock(t)
		appt := sampleAppointment()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(appt.ProfessionalID, appt.StartsAt).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO appointments").
			WithArgs(pgxmock.AnyArg(), appt.ClientName, appt.ClientEmail, appt.ClientPhone,
				appt.StartsAt, appt.Time, appt.UserID, appt.ProfessionalID, appt.ServiceID,
				appt.TotalDuration, pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_professional_starts_at"})
		mock.ExpectRollback()

		_, err := repo.Create(ctx, appt, []uuid.UUID{appt.ServiceID})
		assert.ErrorIs(t, err, domain.ErrConflict)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAppointmentRepo_ListByDateRange(t *testing.T) {
	ctx := context.Background()
	mock, repo := newAppointmentMock(t)

	appointmentID := uuid.New()
	professionalID := uuid.New()
	serviceID := uuid.New()
	startsAt := time.Date(2025, 11, 24, 10, 0, 0, 0, time.Local)
	now := time.Now()

	columns := []string{
		"id", "client_name", "client_email", "client_phone", "starts_at", "time",
		"user_id", "professional_id", "service_id", "total_duration", "created_at", "updated_at",
		"p_id", "p_name", "p_specialties", "p_photo_url", "p_created_at", "p_updated_at",
		"s_id", "s_code", "s_name", "s_duration_min", "s_price", "s_created_at", "s_updated_at",
	}

	mock.ExpectQuery("SELECT (.+) FROM appointments a").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(
			appointmentID, "Maria", "", "+5511999999999", startsAt, "10:00",
			uuid.New(), professionalID, serviceID, 0, now, now,
			professionalID, "Ana", []string{"manicure", "gel"}, "", now, now,
			serviceID, "alongamento_em_fibra", "Aplicação do alongamento", 120, 150.0, now, now,
		))
	mock.ExpectQuery("SELECT aps.appointment_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"appointment_id", "id", "code", "name", "duration_min", "price", "created_at", "updated_at"}))

	appointments, err := repo.ListByDateRange(ctx, startsAt, startsAt.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	// o serviço principal vem junto, mesmo sem linhas na tabela de junção
	require.NotNil(t, appointments[0].Service)
	assert.Equal(t, 120, appointments[0].Service.DurationMin)
	assert.Equal(t, "Ana", appointments[0].Professional.Name)
	assert.Empty(t, appointments[0].Services)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepo_GetByProfessionalAndTime(t *testing.T) {
	ctx := context.Background()
	mock, repo := newAppointmentMock(t)

	professionalID := uuid.New()
	startsAt := time.Date(2025, 11, 24, 14, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(professionalID, startsAt).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByProfessionalAndTime(ctx, professionalID, startsAt)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
