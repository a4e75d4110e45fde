package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nailspro/internal/domain"
)

type appointmentFixture struct {
	svc      *AppointmentServiceImpl
	catalog  []domain.Service
	ana      domain.Professional
	apptRepo *fakeAppointmentRepo
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	catalog := testCatalog()
	serviceRepo := newFakeServiceRepo(catalog...)
	apptRepo := newFakeAppointmentRepo(serviceRepo)
	ana := domain.Professional{ID: uuid.New(), Name: "Ana"}
	profRepo := newFakeProfessionalRepo(ana)
	userRepo := newFakeUserRepo(domain.User{ID: uuid.New(), Name: "Recepção", IsActive: true})

	return &appointmentFixture{
		svc:      NewAppointmentService(apptRepo, serviceRepo, profRepo, userRepo, zap.NewNop()),
		catalog:  catalog,
		ana:      ana,
		apptRepo: apptRepo,
	}
}

func (f *appointmentFixture) serviceID(code string) uuid.UUID {
	for _, s := range f.catalog {
		if s.Code == code {
			return s.ID
		}
	}
	return uuid.Nil
}

func TestAppointmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("agendamento com dois serviços soma a duração", func(t *testing.T) {
		f := newAppointmentFixture(t)

		created, err := f.svc.Create(ctx, domain.CreateAppointmentDTO{
			ClientName:     "Maria",
			ClientPhone:    "11999999999",
			ProfessionalID: f.ana.ID,
			Date:           "2025-11-24",
			Time:           "14:00",
			ServiceIDs:     []uuid.UUID{f.serviceID("manicure_simples"), f.serviceID("pedicure_simples")},
		})
		require.NoError(t, err)

		assert.Equal(t, 80, created.TotalDuration)
		assert.Equal(t, "14:00", created.Time)
		assert.Equal(t, mustParseLocal(t, "2025-11-24 14:00"), created.StartsAt)
		assert.Equal(t, "+5511999999999", created.ClientPhone)
		assert.Len(t, created.Services, 2)
	})

	t.Run("campo legado com um serviço ainda funciona", func(t *testing.T) {
		f := newAppointmentFixture(t)
		manicureID := f.serviceID("manicure_simples")

		created, err := f.svc.Create(ctx, domain.CreateAppointmentDTO{
			ClientName:     "Joana",
			ClientPhone:    "11988888888",
			ProfessionalID: f.ana.ID,
			Date:           "2025-11-24",
			Time:           "10:00",
			ServiceID:      &manicureID,
		})
		require.NoError(t, err)

		assert.Equal(t, 40, created.TotalDuration)
		assert.Equal(t, manicureID, created.ServiceID)
	})

	t.Run("sem serviços é rejeitado", func(t *testing.T) {
		f := newAppointmentFixture(t)

		_, err := f.svc.Create(ctx, domain.CreateAppointmentDTO{
			ClientName:     "Maria",
			ClientPhone:    "11999999999",
			ProfessionalID: f.ana.ID,
			Date:           "2025-11-24",
			Time:           "14:00",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("serviço desconhecido derruba o pedido inteiro", func(t *testing.T) {
		f := newAppointmentFixture(t)

		_, err := f.svc.Create(ctx, domain.CreateAppointmentDTO{
			ClientName:     "Maria",
			ClientPhone:    "11999999999",
			ProfessionalID: f.ana.ID,
			Date:           "2025-11-24",
			Time:           "14:00",
			ServiceIDs:     []uuid.UUID{f.serviceID("manicure_simples"), uuid.New()},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, f.apptRepo.appointments)
	})

	t.Run("horário em formato inválido é rejeitado", func(t *testing.T) {
		f := newAppointmentFixture(t)

		_, err := f.svc.Create(ctx, domain.CreateAppointmentDTO{
			ClientName:     "Maria",
			ClientPhone:    "11999999999",
			ProfessionalID: f.ana.ID,
			Date:           "2025-11-24",
			Time:           "14h00",
			ServiceIDs:     []uuid.UUID{f.serviceID("manicure_simples")},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("profissional inexistente é rejeitada", func(t *testing.T) {
		f := newAppointmentFixture(t)

		_, err := f.svc.Create(ctx, domain.CreateAppointmentDTO{
			ClientName:     "Maria",
			ClientPhone:    "11999999999",
			ProfessionalID: uuid.New(),
			Date:           "2025-11-24",
			Time:           "14:00",
			ServiceIDs:     []uuid.UUID{f.serviceID("manicure_simples")},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("mesmo instante e profissional gera conflito", func(t *testing.T) {
		f := newAppointmentFixture(t)
		dto := domain.CreateAppointmentDTO{
			ClientName:     "Maria",
			ClientPhone:    "11999999999",
			ProfessionalID: f.ana.ID,
			Date:           "2025-11-24",
			Time:           "14:00",
			ServiceIDs:     []uuid.UUID{f.serviceID("manicure_simples")},
		}

		_, err := f.svc.Create(ctx, dto)
		require.NoError(t, err)

		dto.ClientName = "Joana"
		_, err = f.svc.Create(ctx, dto)
		assert.ErrorIs(t, err, domain.ErrConflict)

		// horário diferente no mesmo dia passa
		dto.Time = "16:00"
		_, err = f.svc.Create(ctx, dto)
		assert.NoError(t, err)
	})

	t.Run("serviço repetido soma a duração duas vezes", func(t *testing.T) {
		f := newAppointmentFixture(t)
		manicureID := f.serviceID("manicure_simples")

		created, err := f.svc.Create(ctx, domain.CreateAppointmentDTO{
			ClientName:     "Maria",
			ClientPhone:    "11999999999",
			ProfessionalID: f.ana.ID,
			Date:           "2025-11-24",
			Time:           "14:00",
			ServiceIDs:     []uuid.UUID{manicureID, manicureID},
		})
		require.NoError(t, err)

		assert.Equal(t, 80, created.TotalDuration)
		// o vínculo não repete o serviço
		assert.Len(t, created.Services, 1)
	})
}
