package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nailspro/internal/domain"
	"nailspro/internal/repository"
	"nailspro/internal/storage"
)

type ProfessionalServiceImpl struct {
	repo        repository.ProfessionalRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewProfessionalService(repo repository.ProfessionalRepository, fileStorage storage.FileStorage, logger *zap.Logger) *ProfessionalServiceImpl {
	return &ProfessionalServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *ProfessionalServiceImpl) List(ctx context.Context) ([]domain.Professional, error) {
	professionals, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar profissionais", zap.Error(err))
		return nil, errors.New("erro ao listar as profissionais")
	}
	return professionals, nil
}

func (s *ProfessionalServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	professional, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("erro ao buscar profissional", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.New("erro ao buscar a profissional")
	}
	return professional, nil
}

func (s *ProfessionalServiceImpl) UploadPhoto(ctx context.Context, id uuid.UUID, photo []byte, filename string) (string, error) {
	professional, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if s.fileStorage == nil {
		return "", errors.New("armazenamento de arquivos não configurado")
	}

	// substitui a foto anterior; falha na remoção não impede o upload novo
	if professional.PhotoURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, professional.PhotoURL); err != nil {
			s.logger.Warn("erro ao remover foto antiga", zap.String("id", id.String()), zap.Error(err))
		}
	}

	photoURL, err := s.fileStorage.UploadFile(ctx, photo, filename)
	if err != nil {
		s.logger.Error("erro ao enviar foto", zap.String("id", id.String()), zap.Error(err))
		return "", errors.New("erro ao enviar a foto")
	}

	if err := s.repo.UpdatePhoto(ctx, id, photoURL); err != nil {
		s.logger.Error("erro ao salvar URL da foto", zap.String("id", id.String()), zap.Error(err))
		return "", errors.New("erro ao salvar a foto")
	}

	return photoURL, nil
}

func (s *ProfessionalServiceImpl) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	professional, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if professional.PhotoURL == "" {
		return nil
	}

	if s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, professional.PhotoURL); err != nil {
			s.logger.Warn("erro ao remover foto do armazenamento", zap.String("id", id.String()), zap.Error(err))
		}
	}

	if err := s.repo.UpdatePhoto(ctx, id, ""); err != nil {
		s.logger.Error("erro ao limpar URL da foto", zap.String("id", id.String()), zap.Error(err))
		return errors.New("erro ao remover a foto")
	}

	return nil
}
