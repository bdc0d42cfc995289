package providerservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	providerdb "github.com/xw1nchester/pinfinds-backend/internal/provider/db"
	"github.com/xw1nchester/pinfinds-backend/pkg/transactor"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockproviderrepo
type Repository interface {
	ListByPincode(ctx context.Context, pincode string) ([]provider.Provider, error)
	GetByContact(ctx context.Context, contact string) (*provider.Provider, error)
	GetByID(ctx context.Context, id int) (*provider.Provider, error)
	Create(ctx context.Context, pincode string, data provider.Fields) (*provider.Provider, error)
	Update(ctx context.Context, data provider.Provider) (*provider.Provider, error)
}

type service struct {
	repository Repository
	txManager  transactor.Manager
	logger     *zap.Logger
}

func New(repository Repository, txManager transactor.Manager, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		txManager:  txManager,
		logger:     logger,
	}
}

func (s *service) ListByPincode(ctx context.Context, pincode string) ([]provider.Provider, error) {
	providers, err := s.repository.ListByPincode(ctx, pincode)
	if err != nil {
		s.logger.Error("unexpected error when fetching providers by pincode", zap.Error(err))

		return nil, err
	}

	return providers, nil
}

func (s *service) FindByContact(ctx context.Context, contact string) (*provider.Provider, error) {
	existingProvider, err := s.repository.GetByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, providerdb.ErrProviderNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching provider by contact", zap.Error(err))

		return nil, err
	}

	return existingProvider, nil
}

func (s *service) Create(ctx context.Context, pincode string, data provider.Fields) (*provider.Provider, error) {
	createdProvider, err := s.repository.Create(ctx, pincode, data)
	if err != nil {
		s.logger.Error("unexpected error when creating provider", zap.Error(err))
		return nil, err
	}

	return createdProvider, nil
}

func (s *service) Update(ctx context.Context, data provider.Provider) (*provider.Provider, error) {
	var updatedProvider *provider.Provider

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetByID(ctx, data.ID); err != nil {
			if errors.Is(err, providerdb.ErrProviderNotFound) {
				return apperror.ErrNotFound
			}

			s.logger.Error("unexpected error when fetching provider by id", zap.Error(err))

			return err
		}

		p, err := s.repository.Update(ctx, data)
		if err != nil {
			if errors.Is(err, providerdb.ErrProviderNotFound) {
				return apperror.ErrNotFound
			}

			s.logger.Error("unexpected error when updating provider", zap.Error(err))

			return err
		}

		updatedProvider = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updatedProvider, nil
}
