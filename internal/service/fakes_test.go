package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nailspro/config"
	"nailspro/internal/ai"
	"nailspro/internal/domain"
)

// Dublês em memória dos repositórios, suficientes para exercitar as regras
// de negócio sem banco.

type fakeServiceRepo struct {
	services []domain.Service
}

func newFakeServiceRepo(services ...domain.Service) *fakeServiceRepo {
	return &fakeServiceRepo{services: services}
}

func (r *fakeServiceRepo) Create(ctx context.Context, dto domain.CreateServiceDTO) (uuid.UUID, error) {
	id := uuid.New()
	r.services = append(r.services, domain.Service{
		ID:          id,
		Code:        dto.Code,
		Name:        dto.Name,
		DurationMin: dto.DurationMin,
		Price:       dto.Price,
	})
	return id, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateServiceDTO) error {
	for i := range r.services {
		if r.services[i].ID == id {
			if dto.Name != nil {
				r.services[i].Name = *dto.Name
			}
			if dto.DurationMin != nil {
				r.services[i].DurationMin = *dto.DurationMin
			}
			if dto.Price != nil {
				r.services[i].Price = *dto.Price
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			service := s
			return &service, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeServiceRepo) GetByCode(ctx context.Context, code string) (*domain.Service, error) {
	for _, s := range r.services {
		if s.Code == code {
			service := s
			return &service, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeServiceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error) {
	var result []domain.Service
	for _, s := range r.services {
		for _, id := range ids {
			if s.ID == id {
				result = append(result, s)
				break
			}
		}
	}
	return result, nil
}

func (r *fakeServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	return r.services, nil
}

type fakeProfessionalRepo struct {
	professionals []domain.Professional
}

func newFakeProfessionalRepo(professionals ...domain.Professional) *fakeProfessionalRepo {
	return &fakeProfessionalRepo{professionals: professionals}
}

func (r *fakeProfessionalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	for _, p := range r.professionals {
		if p.ID == id {
			professional := p
			return &professional, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProfessionalRepo) GetByName(ctx context.Context, name string) (*domain.Professional, error) {
	for _, p := range r.professionals {
		if p.Name == name {
			professional := p
			return &professional, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProfessionalRepo) List(ctx context.Context) ([]domain.Professional, error) {
	return r.professionals, nil
}

func (r *fakeProfessionalRepo) UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error {
	for i := range r.professionals {
		if r.professionals[i].ID == id {
			r.professionals[i].PhotoURL = photoURL
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeUserRepo struct {
	users []domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	return &fakeUserRepo{users: users}
}

func (r *fakeUserRepo) Create(ctx context.Context, dto domain.CreateUserDTO) (uuid.UUID, error) {
	id := uuid.New()
	r.users = append(r.users, domain.User{ID: id, Name: dto.Name, Email: dto.Email, Phone: dto.Phone, IsActive: true})
	return id, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetFirst(ctx context.Context) (*domain.User, error) {
	if len(r.users) == 0 {
		return nil, domain.ErrNotFound
	}
	user := r.users[0]
	return &user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateUserDTO) error {
	for i := range r.users {
		if r.users[i].ID == id {
			if dto.Name != nil {
				r.users[i].Name = *dto.Name
			}
			if dto.Phone != nil {
				r.users[i].Phone = *dto.Phone
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeAppointmentRepo struct {
	appointments []domain.Appointment
	links        map[uuid.UUID][]uuid.UUID
	serviceRepo  *fakeServiceRepo
}

func newFakeAppointmentRepo(serviceRepo *fakeServiceRepo) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		links:       make(map[uuid.UUID][]uuid.UUID),
		serviceRepo: serviceRepo,
	}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appt domain.Appointment, serviceIDs []uuid.UUID) (uuid.UUID, error) {
	for _, existing := range r.appointments {
		if existing.ProfessionalID == appt.ProfessionalID && existing.StartsAt.Equal(appt.StartsAt) {
			return uuid.Nil, domain.ErrConflict
		}
	}

	appt.ID = uuid.New()
	r.appointments = append(r.appointments, appt)
	r.links[appt.ID] = serviceIDs
	return appt.ID, nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			appt := a
			if r.serviceRepo != nil {
				services, _ := r.serviceRepo.GetByIDs(ctx, r.links[id])
				appt.Services = services
			}
			return &appt, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAppointmentRepo) GetByProfessionalAndTime(ctx context.Context, professionalID uuid.UUID, startsAt time.Time) (*domain.Appointment, error) {
	for _, a := range r.appointments {
		if a.ProfessionalID == professionalID && a.StartsAt.Equal(startsAt) {
			appt := a
			return &appt, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAppointmentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for _, a := range r.appointments {
		if !a.StartsAt.Before(start) && !a.StartsAt.After(end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func testAgenda() config.AgendaConfig {
	return config.AgendaConfig{
		OpenTime:    "09:00",
		CloseTime:   "19:00",
		SlotMinutes: 30,
	}
}

func testSalon() config.SalonConfig {
	return config.SalonConfig{Name: "NailsPro Studio"}
}

// testCatalog devolve o catálogo oficial com IDs fixos por execução.
func testCatalog() []domain.Service {
	return []domain.Service{
		{ID: uuid.New(), Code: "manicure_simples", Name: "Manicure simples", DurationMin: 40, Price: 30},
		{ID: uuid.New(), Code: "pedicure_simples", Name: "Pedicure simples", DurationMin: 40, Price: 35},
		{ID: uuid.New(), Code: "combo_maos_pes", Name: "Combo mãos + pés", DurationMin: 80, Price: 60},
		{ID: uuid.New(), Code: "banho_de_gel", Name: "Banho de gel", DurationMin: 60, Price: 90},
	}
}

// stubCompleter devolve respostas pré-programadas e guarda o prompt de
// sistema recebido.
type stubCompleter struct {
	replies []string
	calls   int
	system  string
	err     error
}

func (s *stubCompleter) Complete(ctx context.Context, system string, messages []ai.Message) (string, error) {
	s.system = system
	if s.err != nil {
		return "", s.err
	}
	if s.calls >= len(s.replies) {
		return "", fmt.Errorf("resposta não programada para a chamada %d", s.calls)
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}
