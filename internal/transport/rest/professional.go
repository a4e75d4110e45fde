package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxPhotoSize = 5 << 20 // 5 MB

// @Summary Profissionais do salão
// @Description Lista as profissionais e suas especialidades
// @Tags Profissionais
// @Produce json
// @Success 200 {array} domain.Professional "Profissionais"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /professionals [get]
func (h *Handler) getProfessionals(c *gin.Context) {
	professionals, err := h.services.Professional.List(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, professionals)
}

// @Summary Profissional por ID
// @Tags Profissionais
// @Produce json
// @Param id path string true "ID da profissional"
// @Success 200 {object} domain.Professional "Profissional"
// @Failure 404 {object} errorResponseBody "Profissional não encontrada"
// @Router /professionals/{id} [get]
func (h *Handler) getProfessionalByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	professional, err := h.services.Professional.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, professional)
}

// @Summary Upload da foto da profissional
// @Description Envia a foto de perfil (multipart, campo "photo")
// @Tags Profissionais
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID da profissional"
// @Param photo formData file true "Arquivo de imagem"
// @Success 200 {object} successResponseBody "URL da foto"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Failure 404 {object} errorResponseBody "Profissional não encontrada"
// @Router /professionals/{id}/photo [post]
func (h *Handler) uploadProfessionalPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		badRequestResponse(c, "arquivo de foto não enviado")
		return
	}

	if fileHeader.Size > maxPhotoSize {
		badRequestResponse(c, "a foto deve ter no máximo 5 MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("erro ao abrir o arquivo enviado", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("erro ao ler o arquivo enviado", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	photoURL, err := h.services.Professional.UploadPhoto(c.Request.Context(), id, data, fileHeader.Filename)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"photo_url": photoURL,
	})
}

// @Summary Remoção da foto da profissional
// @Tags Profissionais
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID da profissional"
// @Success 204 {object} nil "Foto removida"
// @Failure 401 {object} errorResponseBody "Não autenticado"
// @Failure 404 {object} errorResponseBody "Profissional não encontrada"
// @Router /professionals/{id}/photo [delete]
func (h *Handler) deleteProfessionalPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "ID inválido")
		return
	}

	if err := h.services.Professional.DeletePhoto(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	noContentResponse(c)
}
