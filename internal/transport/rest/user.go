package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nailspro/internal/domain"
)

// @Summary Usuário atual
// @Description Devolve os dados do usuário autenticado
// @Tags Usuários
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.User "Dados do usuário"
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Failure 404 {object} errorResponseBody "Usuário não encontrado"
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Atualização do usuário atual
// @Description Atualiza nome e telefone do usuário autenticado
// @Tags Usuários
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdateUserDTO true "Campos a atualizar"
// @Success 200 {object} messageResponseType "Usuário atualizado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Router /users/me [put]
func (h *Handler) updateCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.User.Update(c.Request.Context(), userID, input); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "usuário atualizado com sucesso")
}
