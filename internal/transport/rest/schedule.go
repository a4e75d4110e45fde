package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Slots ocupados do dia
// @Description Devolve as chaves "professionalID|HH:MM" ocupadas na data
// @Tags Agenda
// @Produce json
// @Param date query string true "Data no formato YYYY-MM-DD"
// @Success 200 {array} string "Slots ocupados"
// @Failure 400 {object} errorResponseBody "Data inválida"
// @Router /schedules/busy-slots [get]
func (h *Handler) getBusySlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "o parâmetro date é obrigatório")
		return
	}

	slots, err := h.services.Availability.BusySlots(c.Request.Context(), date)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Horários livres de uma profissional
// @Description Devolve os horários de início livres da profissional na data
// @Tags Agenda
// @Produce json
// @Param professional_id query string true "ID da profissional"
// @Param date query string true "Data no formato YYYY-MM-DD"
// @Success 200 {array} string "Horários livres (HH:MM)"
// @Failure 400 {object} errorResponseBody "Parâmetros inválidos"
// @Failure 404 {object} errorResponseBody "Profissional não encontrada"
// @Router /schedules/free-slots [get]
func (h *Handler) getFreeSlots(c *gin.Context) {
	professionalID, err := uuid.Parse(c.Query("professional_id"))
	if err != nil {
		badRequestResponse(c, "o parâmetro professional_id é obrigatório")
		return
	}

	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "o parâmetro date é obrigatório")
		return
	}

	slots, err := h.services.Availability.FreeSlots(c.Request.Context(), professionalID, date)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}
