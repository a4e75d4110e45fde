package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/config"
	"nailspro/internal/domain"
	"nailspro/internal/repository"
	"nailspro/pkg/auth"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

type AuthServiceImpl struct {
	authRepo  repository.AuthRepository
	userRepo  repository.UserRepository
	jwtConfig config.JWTConfig
	logger    *zap.Logger
}

func NewAuthService(authRepo repository.AuthRepository, userRepo repository.UserRepository, jwtConfig config.JWTConfig, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		authRepo:  authRepo,
		userRepo:  userRepo,
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (uuid.UUID, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err == nil && existingUser != nil {
		return uuid.Nil, fmt.Errorf("%w: já existe um usuário com esse e-mail", domain.ErrValidation)
	}

	existingUser, err = s.userRepo.GetByPhone(ctx, dto.Phone)
	if err == nil && existingUser != nil {
		return uuid.Nil, fmt.Errorf("%w: já existe um usuário com esse telefone", domain.ErrValidation)
	}

	hashedPassword, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("erro ao gerar hash da senha", zap.Error(err))
		return uuid.Nil, errors.New("erro ao registrar o usuário")
	}

	createUserDTO := domain.CreateUserDTO{
		Name:     dto.Name,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Password: hashedPassword,
	}

	userID, err := s.userRepo.Create(ctx, createUserDTO)
	if err != nil {
		s.logger.Error("erro ao criar usuário", zap.Error(err))
		return uuid.Nil, errors.New("erro ao registrar o usuário")
	}

	return userID, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Login)
	if err != nil {
		user, err = s.userRepo.GetByPhone(ctx, dto.Login)
		if err != nil {
			s.logger.Warn("usuário não encontrado no login", zap.String("login", dto.Login))
			return nil, fmt.Errorf("%w: login ou senha incorretos", domain.ErrValidation)
		}
	}

	ok, err := auth.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error("erro ao verificar senha", zap.Error(err))
		return nil, errors.New("erro ao autenticar")
	}
	if !ok {
		return nil, fmt.Errorf("%w: login ou senha incorretos", domain.ErrValidation)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: conta desativada", domain.ErrValidation)
	}

	tokens, err := s.generateTokens(user.ID)
	if err != nil {
		s.logger.Error("erro ao gerar tokens", zap.Error(err))
		return nil, errors.New("erro ao autenticar")
	}

	session := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateSession(ctx, session); err != nil {
		s.logger.Error("erro ao salvar sessão", zap.Error(err))
		return nil, errors.New("erro ao autenticar")
	}

	return tokens, nil
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("sessão não encontrada para o refresh token", zap.Error(err))
		return nil, fmt.Errorf("%w: refresh token inválido", domain.ErrValidation)
	}

	if session.ExpiresAt.Before(time.Now()) {
		s.authRepo.DeleteSession(ctx, session.ID)
		return nil, fmt.Errorf("%w: refresh token expirado", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		s.logger.Error("usuário da sessão não encontrado", zap.String("userID", session.UserID.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: usuário não encontrado", domain.ErrValidation)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: conta desativada", domain.ErrValidation)
	}

	if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Warn("erro ao remover sessão antiga", zap.Error(err))
	}

	tokens, err := s.generateTokens(user.ID)
	if err != nil {
		s.logger.Error("erro ao gerar tokens", zap.Error(err))
		return nil, errors.New("erro ao renovar os tokens")
	}

	newSession := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateSession(ctx, newSession); err != nil {
		s.logger.Error("erro ao salvar nova sessão", zap.Error(err))
		return nil, errors.New("erro ao renovar os tokens")
	}

	return tokens, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("sessão não encontrada no logout", zap.Error(err))
		return nil
	}

	if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
		s.logger.Error("erro ao remover sessão", zap.Error(err))
		return errors.New("erro ao encerrar a sessão")
	}

	return nil
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("erro ao validar o token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("token inválido")
	}

	return claims.UserID, nil
}

func (s *AuthServiceImpl) generateTokens(userID uuid.UUID) (*domain.Tokens, error) {
	accessTokenClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("erro ao assinar o access token: %w", err)
	}

	refreshTokenClaims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
		UserID: userID,
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshTokenClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("erro ao assinar o refresh token: %w", err)
	}

	return &domain.Tokens{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
	}, nil
}
