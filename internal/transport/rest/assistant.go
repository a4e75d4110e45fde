package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nailspro/internal/domain"
)

// @Summary Conversa com o assistente de agendamento
// @Description Conduz um turno da conversa; quando a cliente confirma, o agendamento é registrado
// @Tags Assistente
// @Accept json
// @Produce json
// @Param input body domain.ChatRequest true "Histórico da conversa"
// @Success 200 {object} domain.ChatResponse "Resposta do assistente"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 502 {object} errorResponseBody "Assistente indisponível"
// @Router /assistant/chat [post]
func (h *Handler) assistantChat(c *gin.Context) {
	var input domain.ChatRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	reply, err := h.services.Assistant.Chat(c.Request.Context(), input.Messages)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.ChatResponse{Reply: reply})
}
