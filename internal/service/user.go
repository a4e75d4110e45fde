package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/internal/domain"
	"nailspro/internal/repository"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("erro ao buscar usuário", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.New("erro ao buscar o usuário")
	}
	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateUserDTO) error {
	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("erro ao atualizar usuário", zap.String("id", id.String()), zap.Error(err))
		return errors.New("erro ao atualizar o usuário")
	}
	return nil
}
