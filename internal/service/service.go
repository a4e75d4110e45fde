package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/config"
	"nailspro/internal/ai"
	"nailspro/internal/domain"
	"nailspro/internal/repository"
	"nailspro/internal/storage"
)

// ChatCompleter é o colaborador de linguagem natural do assistente de
// agenda. Em produção é o cliente Groq; nos testes, um dublê.
type ChatCompleter interface {
	Complete(ctx context.Context, system string, messages []ai.Message) (string, error)
}

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	AI          ChatCompleter
}

type Services struct {
	User         UserService
	Auth         AuthService
	Catalog      CatalogService
	Professional ProfessionalService
	Appointment  AppointmentService
	Availability AvailabilityService
	Assistant    AssistantService
}

func NewServices(deps Deps) *Services {
	catalog := NewCatalogService(deps.Repos.Service, deps.Logger)
	appointment := NewAppointmentService(deps.Repos.Appointment, deps.Repos.Service, deps.Repos.Professional, deps.Repos.User, deps.Logger)

	return &Services{
		User:         NewUserService(deps.Repos.User, deps.Logger),
		Auth:         NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Catalog:      catalog,
		Professional: NewProfessionalService(deps.Repos.Professional, deps.FileStorage, deps.Logger),
		Appointment:  appointment,
		Availability: NewAvailabilityService(deps.Repos.Appointment, deps.Repos.Professional, deps.Config.Agenda, deps.Logger),
		Assistant:    NewAssistantService(deps.AI, catalog, appointment, deps.Repos.Professional, deps.Config.Salon, deps.Config.Agenda, deps.Logger),
	}
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateUserDTO) error
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (uuid.UUID, error)
}

// CatalogService é a fonte única do catálogo oficial: tanto a validação de
// agendamentos quanto o prompt do assistente derivam dele.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByCode(ctx context.Context, code string) (*domain.Service, error)
	// ServicesByCodes resolve uma sequência de códigos preservando ordem e
	// repetições; códigos desconhecidos são descartados em silêncio.
	ServicesByCodes(ctx context.Context, codes []string) ([]domain.Service, error)
	// TotalPrice soma os preços da sequência (repetições contam duas vezes).
	// Valores nunca vêm do cliente nem do modelo, sempre desta tabela.
	TotalPrice(ctx context.Context, codes []string) (float64, error)
	Create(ctx context.Context, dto domain.CreateServiceDTO) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateServiceDTO) error
}

type ProfessionalService interface {
	List(ctx context.Context) ([]domain.Professional, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	UploadPhoto(ctx context.Context, id uuid.UUID, photo []byte, filename string) (string, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
}

type AvailabilityService interface {
	// ListDay devolve os agendamentos do dia com profissional e serviços
	// populados, em ordem de horário.
	ListDay(ctx context.Context, date string) ([]domain.Appointment, error)
	// BusySlots devolve as chaves "professionalID|HH:MM" ocupadas no dia.
	// Projeção de leitura, recalculada a cada chamada, nunca persistida.
	BusySlots(ctx context.Context, date string) ([]string, error)
	FreeSlots(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error)
}

type AssistantService interface {
	Chat(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
