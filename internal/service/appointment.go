package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/internal/domain"
	"nailspro/internal/repository"
	"nailspro/pkg/validator"
)

type AppointmentServiceImpl struct {
	repo             repository.AppointmentRepository
	serviceRepo      repository.ServiceRepository
	professionalRepo repository.ProfessionalRepository
	userRepo         repository.UserRepository
	logger           *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	professionalRepo repository.ProfessionalRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:             repo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Create é o único caminho de escrita de agendamentos. Valida o pedido,
// resolve os serviços, soma a duração total, checa conflito de instante
// exato e persiste agendamento + vínculos atomicamente.
func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	// lista final de serviços: se vier service_ids usa todos, senão só o
	// principal (campo legado)
	allServiceIDs := dto.ServiceIDs
	if len(allServiceIDs) == 0 && dto.ServiceID != nil {
		allServiceIDs = []uuid.UUID{*dto.ServiceID}
	}

	if len(allServiceIDs) == 0 {
		return nil, fmt.Errorf("%w: é necessário informar pelo menos um serviço", domain.ErrValidation)
	}

	services, err := s.serviceRepo.GetByIDs(ctx, allServiceIDs)
	if err != nil {
		s.logger.Error("erro ao buscar serviços do agendamento", zap.Error(err))
		return nil, errors.New("erro ao validar os serviços")
	}

	byID := make(map[uuid.UUID]domain.Service, len(services))
	for _, service := range services {
		byID[service.ID] = service
	}

	// resolução parcial não é aceita: qualquer serviço desconhecido derruba
	// o pedido inteiro
	totalDuration := 0
	for _, serviceID := range allServiceIDs {
		service, ok := byID[serviceID]
		if !ok {
			return nil, fmt.Errorf("%w: algum serviço selecionado não foi encontrado", domain.ErrValidation)
		}
		totalDuration += service.DurationMin
	}

	// serviço principal: usa o service_id do pedido ou o primeiro da lista
	primaryServiceID := allServiceIDs[0]
	if dto.ServiceID != nil {
		primaryServiceID = *dto.ServiceID
	}

	if !validator.ValidateDate(dto.Date) || !validator.ValidateTime(dto.Time) {
		return nil, fmt.Errorf("%w: data ou horário em formato inválido", domain.ErrValidation)
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", dto.Date+" "+dto.Time, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: data ou horário inválidos", domain.ErrValidation)
	}

	if _, err := s.professionalRepo.GetByID(ctx, dto.ProfessionalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: profissional não encontrada", domain.ErrValidation)
		}
		s.logger.Error("erro ao buscar profissional do agendamento", zap.Error(err))
		return nil, errors.New("erro ao validar a profissional")
	}

	ownerID, err := s.resolveOwner(ctx, dto.UserID)
	if err != nil {
		return nil, err
	}

	// pré-checagem de conflito no instante exato; a restrição UNIQUE do
	// banco cobre a corrida entre requisições concorrentes
	_, err = s.repo.GetByProfessionalAndTime(ctx, dto.ProfessionalID, startsAt)
	if err == nil {
		return nil, domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("erro ao verificar conflito de horário", zap.Error(err))
		return nil, errors.New("erro ao verificar a disponibilidade do horário")
	}

	appointment := domain.Appointment{
		ClientName:     dto.ClientName,
		ClientEmail:    dto.ClientEmail,
		ClientPhone:    validator.FormatPhone(dto.ClientPhone),
		StartsAt:       startsAt,
		Time:           dto.Time,
		UserID:         ownerID,
		ProfessionalID: dto.ProfessionalID,
		ServiceID:      primaryServiceID,
		TotalDuration:  totalDuration,
	}

	id, err := s.repo.Create(ctx, appointment, dedupeIDs(allServiceIDs))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		s.logger.Error("erro ao criar agendamento", zap.Error(err))
		return nil, errors.New("erro ao criar o agendamento")
	}

	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("erro ao carregar agendamento criado", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.New("erro ao carregar o agendamento criado")
	}

	s.logger.Info("agendamento criado",
		zap.String("id", id.String()),
		zap.String("professionalID", dto.ProfessionalID.String()),
		zap.Time("startsAt", startsAt),
		zap.Int("totalDuration", totalDuration),
	)

	return created, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("erro ao buscar agendamento", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.New("erro ao buscar o agendamento")
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) resolveOwner(ctx context.Context, userID *uuid.UUID) (uuid.UUID, error) {
	if userID != nil {
		user, err := s.userRepo.GetByID(ctx, *userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return uuid.Nil, fmt.Errorf("%w: usuário não encontrado", domain.ErrValidation)
			}
			s.logger.Error("erro ao buscar usuário do agendamento", zap.Error(err))
			return uuid.Nil, errors.New("erro ao validar o usuário")
		}
		return user.ID, nil
	}

	// sem usuário no pedido, o agendamento fica na conta mais antiga do
	// painel (comportamento legado do canal público)
	user, err := s.userRepo.GetFirst(ctx)
	if err != nil {
		s.logger.Error("nenhum usuário do painel encontrado", zap.Error(err))
		return uuid.Nil, errors.New("erro ao determinar o dono do agendamento")
	}
	return user.ID, nil
}

// dedupeIDs remove repetições preservando a ordem, para não violar a chave
// primária da tabela de junção.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
