package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nailspro/internal/domain"
)

// @Summary Registro de usuário do painel
// @Description Cria uma conta de acesso ao painel do salão
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.RegisterRequest true "Dados de registro"
// @Success 201 {object} successResponseBody "ID do usuário criado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input domain.RegisterRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	id, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("erro no registro", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Login
// @Description Autentica o usuário e devolve os tokens de acesso
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credenciais"
// @Success 200 {object} domain.Tokens "Tokens de acesso e renovação"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 401 {object} errorResponseBody "Credenciais inválidas"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	userAgent := c.Request.UserAgent()
	ip := c.ClientIP()

	tokens, err := h.services.Auth.Login(c.Request.Context(), input, userAgent, ip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			errorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("erro no login", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Renovação de tokens
// @Description Troca o refresh token por um novo par de tokens
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.RefreshRequest true "Refresh token"
// @Success 200 {object} domain.Tokens "Novos tokens"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 401 {object} errorResponseBody "Refresh token inválido"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var input domain.RefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	userAgent := c.Request.UserAgent()
	ip := c.ClientIP()

	tokens, err := h.services.Auth.RefreshTokens(c.Request.Context(), input.RefreshToken, userAgent, ip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			errorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("erro ao renovar tokens", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, tokens)
}

// @Summary Logout
// @Description Encerra a sessão associada ao refresh token
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.RefreshRequest true "Refresh token"
// @Success 204 {object} nil "Sessão encerrada"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 500 {object} errorResponseBody "Erro interno do servidor"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	var input domain.RefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), input.RefreshToken); err != nil {
		h.logger.Error("erro no logout", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
