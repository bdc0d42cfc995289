package locationservice

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"go.uber.org/zap"
)

const minSearchLength = 3

var ErrSearchTooShort = apperror.NewAppError("Please enter at least 3 characters to search.")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocklocation
type Client interface {
	Search(ctx context.Context, term string) []location.Location
}

type State interface {
	LastLocation(ctx context.Context, sid string) (*location.Location, error)
	SetLastLocation(ctx context.Context, sid string, l location.Location) error
	ClearLastLocation(ctx context.Context, sid string) error
}

type service struct {
	client Client
	state  State
	logger *zap.Logger
}

func New(client Client, state State, logger *zap.Logger) *service {
	return &service{
		client: client,
		state:  state,
		logger: logger,
	}
}

// Search returns an empty slice both for no matches and for lookup failures.
func (s *service) Search(ctx context.Context, term string) ([]location.Location, error) {
	if utf8.RuneCountInString(strings.TrimSpace(term)) < minSearchLength {
		return nil, ErrSearchTooShort
	}

	return s.client.Search(ctx, term), nil
}

func (s *service) Select(ctx context.Context, sid string, l location.Location) error {
	if err := s.state.SetLastLocation(ctx, sid, l); err != nil {
		s.logger.Error("unexpected error when saving last location", zap.Error(err))

		return err
	}

	return nil
}

func (s *service) Current(ctx context.Context, sid string) (*location.Location, error) {
	l, err := s.state.LastLocation(ctx, sid)
	if err != nil {
		s.logger.Error("unexpected error when reading last location", zap.Error(err))

		return nil, err
	}

	return l, nil
}

func (s *service) Forget(ctx context.Context, sid string) error {
	if err := s.state.ClearLastLocation(ctx, sid); err != nil {
		s.logger.Error("unexpected error when clearing last location", zap.Error(err))

		return err
	}

	return nil
}
