package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/internal/domain"
)

// @Summary Catálogo de serviços
// @Description Lista todos os serviços oferecidos pelo salão, com duração e preço
// @Tags Serviços
// @Produce json
// @Success 200 {array} domain.Service "Serviços do catálogo"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /services [get]
func (h *Handler) getServices(c *gin.Context) {
	services, err := h.services.Catalog.List(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, services)
}

// @Summary Criação de serviço
// @Description Adiciona um serviço ao catálogo oficial
// @Tags Serviços
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateServiceDTO true "Dados do serviço"
// @Success 201 {object} successResponseBody "ID do serviço criado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Router /services [post]
func (h *Handler) createService(c *gin.Context) {
	var input domain.CreateServiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Catalog.Create(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Atualização de serviço
// @Description Atualiza os campos informados de um serviço do catálogo
// @Tags Serviços
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID do serviço"
// @Param input body domain.UpdateServiceDTO true "Campos a atualizar"
// @Success 200 {object} messageResponseType "Serviço atualizado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Failure 404 {object} errorResponseBody "Serviço não encontrado"
// @Router /services/{id} [put]
func (h *Handler) updateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	var input domain.UpdateServiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Catalog.Update(c.Request.Context(), id, input); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "serviço atualizado com sucesso")
}
