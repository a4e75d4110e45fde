package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/config"
	"nailspro/internal/domain"
	"nailspro/internal/repository"
)

type AvailabilityServiceImpl struct {
	repo             repository.AppointmentRepository
	professionalRepo repository.ProfessionalRepository
	agenda           config.AgendaConfig
	logger           *zap.Logger
}

func NewAvailabilityService(
	repo repository.AppointmentRepository,
	professionalRepo repository.ProfessionalRepository,
	agenda config.AgendaConfig,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		repo:             repo,
		professionalRepo: professionalRepo,
		agenda:           agenda,
		logger:           logger,
	}
}

func (s *AvailabilityServiceImpl) ListDay(ctx context.Context, date string) ([]domain.Appointment, error) {
	start, end, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		s.logger.Error("erro ao listar agendamentos do dia", zap.String("date", date), zap.Error(err))
		return nil, errors.New("erro ao listar os agendamentos do dia")
	}

	return appointments, nil
}

func (s *AvailabilityServiceImpl) BusySlots(ctx context.Context, date string) ([]string, error) {
	appointments, err := s.ListDay(ctx, date)
	if err != nil {
		return nil, err
	}

	return BusySlotKeys(appointments, s.agenda), nil
}

func (s *AvailabilityServiceImpl) FreeSlots(ctx context.Context, professionalID uuid.UUID, date string) ([]string, error) {
	if _, err := s.professionalRepo.GetByID(ctx, professionalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("erro ao buscar profissional", zap.String("professionalID", professionalID.String()), zap.Error(err))
		return nil, errors.New("erro ao verificar a profissional")
	}

	appointments, err := s.ListDay(ctx, date)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool)
	for _, key := range BusySlotKeys(appointments, s.agenda) {
		busy[key] = true
	}

	var free []string
	for _, slot := range SlotGrid(s.agenda) {
		if !busy[slotKey(professionalID, slot)] {
			free = append(free, slot)
		}
	}

	return free, nil
}

// BusySlotKeys projeta os agendamentos de um dia no conjunto de slots
// ocupados, como chaves "professionalID|HH:MM". A duração efetiva segue a
// cadeia de fallback: total_duration, soma dos serviços vinculados, duração
// do serviço principal, um slot inteiro (nunca largura zero). Slots fora da
// janela de atendimento não são marcados, mesmo quando a duração estoura o
// fechamento.
func BusySlotKeys(appointments []domain.Appointment, agenda config.AgendaConfig) []string {
	openMin := parseClockMinutes(agenda.OpenTime)
	closeMin := parseClockMinutes(agenda.CloseTime)

	set := make(map[string]bool)
	for _, appt := range appointments {
		duration := effectiveDuration(appt, agenda.SlotMinutes)

		// início fora da grade é ancorado no slot que o contém; o
		// deslocamento entra na duração para não perder o transbordo no fim
		startMin := appt.StartsAt.Hour()*60 + appt.StartsAt.Minute()
		offset := startMin % agenda.SlotMinutes
		startMin -= offset
		duration += offset

		slots := (duration + agenda.SlotMinutes - 1) / agenda.SlotMinutes
		if slots < 1 {
			slots = 1
		}

		for i := 0; i < slots; i++ {
			current := startMin + i*agenda.SlotMinutes
			if current < openMin || current >= closeMin {
				continue
			}
			set[slotKey(appt.ProfessionalID, clockLabel(current))] = true
		}
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// SlotGrid devolve todos os horários de início possíveis dentro da janela
// de atendimento (semiaberta: o fechamento não é um slot).
func SlotGrid(agenda config.AgendaConfig) []string {
	openMin := parseClockMinutes(agenda.OpenTime)
	closeMin := parseClockMinutes(agenda.CloseTime)

	var grid []string
	for current := openMin; current < closeMin; current += agenda.SlotMinutes {
		grid = append(grid, clockLabel(current))
	}

	return grid
}

func effectiveDuration(appt domain.Appointment, slotMinutes int) int {
	if appt.TotalDuration > 0 {
		return appt.TotalDuration
	}

	sum := 0
	for _, service := range appt.Services {
		sum += service.DurationMin
	}
	if sum > 0 {
		return sum
	}

	// linhas antigas sem vínculos ainda carregam o serviço principal
	if appt.Service != nil && appt.Service.DurationMin > 0 {
		return appt.Service.DurationMin
	}

	return slotMinutes
}

func slotKey(professionalID uuid.UUID, slot string) string {
	return professionalID.String() + "|" + slot
}

func clockLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseClockMinutes(value string) int {
	var hour, minute int
	if _, err := fmt.Sscanf(value, "%d:%d", &hour, &minute); err != nil {
		return 0
	}
	return hour*60 + minute
}

func dayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: data deve estar no formato YYYY-MM-DD", domain.ErrValidation)
	}

	start := day
	end := day.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}
