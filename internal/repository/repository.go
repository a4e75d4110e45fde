package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"nailspro/internal/domain"
)

// DB é o subconjunto de *pgxpool.Pool que os repositórios usam. A interface
// permite trocar o pool por pgxmock nos testes.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	User         UserRepository
	Auth         AuthRepository
	Service      ServiceRepository
	Professional ProfessionalRepository
	Appointment  AppointmentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Auth:         NewAuthRepository(db),
		Service:      NewServiceRepository(db),
		Professional: NewProfessionalRepository(db),
		Appointment:  NewAppointmentRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetFirst(ctx context.Context) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateUserDTO) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateServiceDTO) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetByCode(ctx context.Context, code string) (*domain.Service, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
}

type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	GetByName(ctx context.Context, name string) (*domain.Professional, error)
	List(ctx context.Context) ([]domain.Professional, error)
	UpdatePhoto(ctx context.Context, id uuid.UUID, photoURL string) error
}

type AppointmentRepository interface {
	// Create insere o agendamento e as linhas da tabela de junção na mesma
	// transação. Devolve domain.ErrConflict quando o par (profissional,
	// instante) já está ocupado.
	Create(ctx context.Context, appt domain.Appointment, serviceIDs []uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetByProfessionalAndTime(ctx context.Context, professionalID uuid.UUID, startsAt time.Time) (*domain.Appointment, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error)
}
