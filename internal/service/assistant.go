package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/config"
	"nailspro/internal/ai"
	"nailspro/internal/domain"
	"nailspro/internal/repository"
)

// bookingBlockPattern captura o bloco interno que o modelo anexa ao final da
// resposta quando a cliente confirma o agendamento.
var bookingBlockPattern = regexp.MustCompile(`(?s)` + bookingBlockStart + `(.*?)` + bookingBlockEnd)

type AssistantServiceImpl struct {
	ai               ChatCompleter
	catalog          CatalogService
	appointments     AppointmentService
	professionalRepo repository.ProfessionalRepository
	salon            config.SalonConfig
	agenda           config.AgendaConfig
	logger           *zap.Logger
}

func NewAssistantService(
	aiClient ChatCompleter,
	catalog CatalogService,
	appointments AppointmentService,
	professionalRepo repository.ProfessionalRepository,
	salon config.SalonConfig,
	agenda config.AgendaConfig,
	logger *zap.Logger,
) *AssistantServiceImpl {
	return &AssistantServiceImpl{
		ai:               aiClient,
		catalog:          catalog,
		appointments:     appointments,
		professionalRepo: professionalRepo,
		salon:            salon,
		agenda:           agenda,
		logger:           logger,
	}
}

// Chat conduz um turno da conversa de agendamento. O texto devolvido nunca
// contém o bloco interno; quando o modelo confirma um agendamento, o bloco é
// consumido aqui e o resultado (sucesso ou conflito) é anexado à resposta em
// linguagem natural.
func (s *AssistantServiceImpl) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	services, err := s.catalog.List(ctx)
	if err != nil {
		return "", err
	}

	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar profissionais para o assistente", zap.Error(err))
		return "", errors.New("erro ao preparar o assistente")
	}

	system := buildSystemPrompt(s.salon, s.agenda, services, professionals)

	reply, err := s.ai.Complete(ctx, system, toAIMessages(messages))
	if err != nil {
		s.logger.Error("erro na chamada ao modelo de linguagem", zap.Error(err))
		return "", fmt.Errorf("%w: assistente indisponível no momento", domain.ErrUpstream)
	}

	payload, text, hadBlock := extractBooking(reply)
	if payload == nil {
		if hadBlock {
			s.logger.Warn("bloco de agendamento com JSON inválido, respondendo só o texto")
		}
		return text, nil
	}

	if !payload.Confirmed {
		return text, nil
	}

	return s.confirmBooking(ctx, *payload, text)
}

// confirmBooking traduz o payload do modelo para o fluxo normal de criação.
// Qualquer dado que não resolver contra o banco (código de serviço,
// profissional) aborta a confirmação: nada é gravado e a cliente recebe só o
// texto da conversa.
func (s *AssistantServiceImpl) confirmBooking(ctx context.Context, payload domain.BookingPayload, text string) (string, error) {
	if len(payload.ServiceCodes) == 0 || payload.ClientName == "" || payload.ClientPhone == "" ||
		payload.ProfessionalName == "" || payload.Date == "" || payload.Time == "" {
		s.logger.Warn("bloco de agendamento confirmado com campos faltando")
		return text, nil
	}

	serviceIDs := make([]uuid.UUID, 0, len(payload.ServiceCodes))
	for _, code := range payload.ServiceCodes {
		service, err := s.catalog.GetByCode(ctx, code)
		if err != nil {
			s.logger.Warn("código de serviço do assistente não resolvido", zap.String("code", code), zap.Error(err))
			return text, nil
		}
		serviceIDs = append(serviceIDs, service.ID)
	}

	professional, err := s.professionalRepo.GetByName(ctx, strings.TrimSpace(payload.ProfessionalName))
	if err != nil {
		s.logger.Warn("profissional do assistente não resolvida", zap.String("name", payload.ProfessionalName), zap.Error(err))
		return text, nil
	}

	// o valor comunicado à cliente sai sempre da tabela oficial, nunca do
	// texto gerado pelo modelo
	total, err := s.catalog.TotalPrice(ctx, payload.ServiceCodes)
	if err != nil {
		return text, nil
	}

	dto := domain.CreateAppointmentDTO{
		ClientName:     strings.TrimSpace(payload.ClientName),
		ClientEmail:    strings.TrimSpace(payload.ClientEmail),
		ClientPhone:    strings.TrimSpace(payload.ClientPhone),
		ProfessionalID: professional.ID,
		Date:           payload.Date,
		Time:           payload.Time,
		ServiceIDs:     serviceIDs,
	}

	created, err := s.appointments.Create(ctx, dto)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.logger.Info("conflito de horário na confirmação pelo assistente",
				zap.String("professional", professional.Name),
				zap.String("date", payload.Date),
				zap.String("time", payload.Time),
			)
			return text + fmt.Sprintf(
				"\n\n⚠️ Atenção: enquanto finalizávamos a confirmação, o horário %s com a profissional %s acabou de ser ocupado por outra cliente. Pode me dizer outro horário ou outra profissional?\n(O valor total continuaria R$ %s, de acordo com a tabela oficial.)",
				payload.Time, professional.Name, formatPrice(total),
			), nil
		}
		s.logger.Error("erro ao registrar agendamento confirmado pelo assistente", zap.Error(err))
		return text + "\n\n⚠️ Não consegui registrar o agendamento agora. Pode tentar confirmar novamente em instantes?", nil
	}

	s.logger.Info("agendamento registrado pelo assistente",
		zap.String("id", created.ID.String()),
		zap.String("professional", professional.Name),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time),
		zap.Float64("total", total),
	)

	return text + fmt.Sprintf(
		"\n\n✅ Agendamento registrado com sucesso.\nValor total confirmado (de acordo com a tabela oficial): R$ %s.",
		formatPrice(total),
	), nil
}

// extractBooking separa o bloco interno do texto visível. Bloco ausente ou
// com JSON inválido degrada para conversa normal: o texto volta limpo e nada
// é gravado.
func extractBooking(reply string) (*domain.BookingPayload, string, bool) {
	match := bookingBlockPattern.FindStringSubmatch(reply)
	text := strings.TrimSpace(bookingBlockPattern.ReplaceAllString(reply, ""))
	if match == nil {
		return nil, text, false
	}

	var payload domain.BookingPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &payload); err != nil {
		return nil, text, true
	}

	return &payload, text, true
}

func toAIMessages(messages []domain.ChatMessage) []ai.Message {
	result := make([]ai.Message, 0, len(messages))
	for _, m := range messages {
		result = append(result, ai.Message{Role: m.Role, Content: m.Content})
	}
	return result
}
