package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/internal/domain"
)

// @Summary Criação de agendamento
// @Description Cria um agendamento para a cliente, com um ou mais serviços
// @Tags Agendamentos
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Dados do agendamento"
// @Success 201 {object} domain.Appointment "Agendamento criado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 409 {object} errorResponseBody "Horário já ocupado"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var input domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	appointment, err := h.services.Appointment.Create(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, appointment)
}

// @Summary Agendamentos do dia
// @Description Lista os agendamentos de uma data, com profissional e serviços
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Produce json
// @Param date query string true "Data no formato YYYY-MM-DD"
// @Success 200 {array} domain.Appointment "Agendamentos do dia"
// @Failure 400 {object} errorResponseBody "Data inválida"
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Router /appointments [get]
func (h *Handler) getAppointmentsByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "o parâmetro date é obrigatório")
		return
	}

	appointments, err := h.services.Availability.ListDay(c.Request.Context(), date)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

// @Summary Agendamento por ID
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID do agendamento"
// @Success 200 {object} domain.Appointment "Agendamento"
// @Failure 404 {object} errorResponseBody "Agendamento não encontrado"
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}
