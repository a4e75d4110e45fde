package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/internal/domain"
	"nailspro/internal/repository"
)

type CatalogServiceImpl struct {
	repo   repository.ServiceRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.ServiceRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogServiceImpl) List(ctx context.Context) ([]domain.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar o catálogo de serviços", zap.Error(err))
		return nil, errors.New("erro ao listar os serviços")
	}
	return services, nil
}

func (s *CatalogServiceImpl) GetByCode(ctx context.Context, code string) (*domain.Service, error) {
	service, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("erro ao buscar serviço por código", zap.String("code", code), zap.Error(err))
		return nil, errors.New("erro ao buscar o serviço")
	}
	return service, nil
}

// ServicesByCodes resolve a sequência de códigos um a um. Um código
// desconhecido some do resultado em vez de falhar; repetições entram
// repetidas. Quem precisa de resolução total usa GetByCode código a código.
func (s *CatalogServiceImpl) ServicesByCodes(ctx context.Context, codes []string) ([]domain.Service, error) {
	services := make([]domain.Service, 0, len(codes))
	for _, code := range codes {
		service, err := s.repo.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			s.logger.Error("erro ao resolver código de serviço", zap.String("code", code), zap.Error(err))
			return nil, errors.New("erro ao resolver os serviços")
		}
		services = append(services, *service)
	}
	return services, nil
}

func (s *CatalogServiceImpl) TotalPrice(ctx context.Context, codes []string) (float64, error) {
	services, err := s.ServicesByCodes(ctx, codes)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, service := range services {
		total += service.Price
	}
	return total, nil
}

func (s *CatalogServiceImpl) Create(ctx context.Context, dto domain.CreateServiceDTO) (uuid.UUID, error) {
	if _, err := s.repo.GetByCode(ctx, dto.Code); err == nil {
		return uuid.Nil, fmt.Errorf("%w: já existe um serviço com o código %q", domain.ErrValidation, dto.Code)
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("erro ao criar serviço", zap.String("code", dto.Code), zap.Error(err))
		return uuid.Nil, errors.New("erro ao criar o serviço")
	}

	s.logger.Info("serviço criado", zap.String("id", id.String()), zap.String("code", dto.Code))
	return id, nil
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateServiceDTO) error {
	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("erro ao atualizar serviço", zap.String("id", id.String()), zap.Error(err))
		return errors.New("erro ao atualizar o serviço")
	}
	return nil
}
