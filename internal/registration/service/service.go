package registrationservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	"github.com/xw1nchester/pinfinds-backend/internal/registration"
	"go.uber.org/zap"
)

var ErrSubmissionInProgress = apperror.NewStatusError(http.StatusConflict, "a submission is already in progress")

type SessionState interface {
	CurrentUser(ctx context.Context, sid string) (*provider.Provider, error)
	SetCurrentUser(ctx context.Context, sid string, p provider.Provider) error
	LastLocation(ctx context.Context, sid string) (*location.Location, error)
	RegistrationState(ctx context.Context, sid string) (json.RawMessage, error)
	SetRegistrationState(ctx context.Context, sid string, raw json.RawMessage) error
	ClearRegistrationState(ctx context.Context, sid string) error
}

type transition func(ctx context.Context, s registration.State) (registration.State, error)

type service struct {
	machine  *registration.Machine
	state    SessionState
	inFlight sync.Map
	logger   *zap.Logger
}

func New(machine *registration.Machine, state SessionState, logger *zap.Logger) *service {
	return &service{
		machine: machine,
		state:   state,
		logger:  logger,
	}
}

func (s *service) Current(ctx context.Context, sid, pincode string) (*registration.View, error) {
	snapshot, err := s.load(ctx, sid, pincode)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, sid, snapshot), nil
}

func (s *service) SubmitPhone(ctx context.Context, sid, pincode, phone string) (*registration.View, error) {
	return s.run(ctx, sid, pincode, func(ctx context.Context, st registration.State) (registration.State, error) {
		return s.machine.SubmitPhone(ctx, st, phone)
	})
}

func (s *service) SubmitOTP(ctx context.Context, sid, pincode, code string) (*registration.View, error) {
	return s.run(ctx, sid, pincode, func(ctx context.Context, st registration.State) (registration.State, error) {
		return s.machine.SubmitOTP(st, code)
	})
}

func (s *service) Back(ctx context.Context, sid, pincode string) (*registration.View, error) {
	return s.run(ctx, sid, pincode, func(ctx context.Context, st registration.State) (registration.State, error) {
		return s.machine.Back(st)
	})
}

func (s *service) SubmitProfile(ctx context.Context, sid, pincode string, fields provider.Fields) (*registration.View, error) {
	return s.run(ctx, sid, pincode, func(ctx context.Context, st registration.State) (registration.State, error) {
		return s.machine.SubmitProfile(ctx, st, pincode, fields)
	})
}

// Edit opens the profile form of the logged in provider, whatever step the
// wizard was at.
func (s *service) Edit(ctx context.Context, sid, pincode string) (*registration.View, error) {
	return s.run(ctx, sid, pincode, func(ctx context.Context, st registration.State) (registration.State, error) {
		current, err := s.state.CurrentUser(ctx, sid)
		if err != nil {
			s.logger.Error("unexpected error when reading current user", zap.Error(err))
			return st, err
		}

		next, err := registration.EditProfile(current)
		if err != nil {
			return st, err
		}

		return next, nil
	})
}

func (s *service) Cancel(ctx context.Context, sid, pincode string) (*registration.View, error) {
	if err := s.state.ClearRegistrationState(ctx, sid); err != nil {
		s.logger.Error("unexpected error when clearing registration state", zap.Error(err))
		return nil, err
	}

	return s.view(ctx, sid, registration.Snapshot{State: registration.Start(), Pincode: pincode}), nil
}

// run applies fn to the stored wizard state. Only one transition per session
// runs at a time, a concurrent one fails with ErrSubmissionInProgress.
func (s *service) run(ctx context.Context, sid, pincode string, fn transition) (*registration.View, error) {
	if _, loaded := s.inFlight.LoadOrStore(sid, struct{}{}); loaded {
		return nil, ErrSubmissionInProgress
	}
	defer s.inFlight.Delete(sid)

	snapshot, err := s.load(ctx, sid, pincode)
	if err != nil {
		return nil, err
	}

	next, err := fn(ctx, snapshot.State)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			return nil, err
		}

		snapshot.State = next
		snapshot.Error = appErr.Message
		if saveErr := s.save(ctx, sid, snapshot); saveErr != nil {
			return nil, saveErr
		}

		return nil, err
	}

	snapshot = registration.Snapshot{State: next, Pincode: pincode}

	if established, ok := next.(registration.Established); ok {
		if err := s.state.SetCurrentUser(ctx, sid, established.Provider); err != nil {
			s.logger.Error("unexpected error when saving current user", zap.Error(err))
			return nil, err
		}

		if err := s.state.ClearRegistrationState(ctx, sid); err != nil {
			s.logger.Error("unexpected error when clearing registration state", zap.Error(err))
			return nil, err
		}

		return s.view(ctx, sid, snapshot), nil
	}

	if err := s.save(ctx, sid, snapshot); err != nil {
		return nil, err
	}

	return s.view(ctx, sid, snapshot), nil
}

// load starts a new wizard when nothing is stored, the stored state is
// unreadable, or it belongs to another pincode.
func (s *service) load(ctx context.Context, sid, pincode string) (registration.Snapshot, error) {
	fresh := registration.Snapshot{State: registration.Start(), Pincode: pincode}

	raw, err := s.state.RegistrationState(ctx, sid)
	if err != nil {
		s.logger.Error("unexpected error when reading registration state", zap.Error(err))
		return registration.Snapshot{}, err
	}

	if raw == nil {
		return fresh, nil
	}

	snapshot, err := registration.Decode(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable registration state", zap.Error(err))
		return fresh, nil
	}

	if snapshot.Pincode != pincode {
		return fresh, nil
	}

	return snapshot, nil
}

func (s *service) save(ctx context.Context, sid string, snapshot registration.Snapshot) error {
	raw, err := registration.Encode(snapshot)
	if err != nil {
		s.logger.Error("unexpected error when encoding registration state", zap.Error(err))
		return err
	}

	if err := s.state.SetRegistrationState(ctx, sid, raw); err != nil {
		s.logger.Error("unexpected error when saving registration state", zap.Error(err))
		return err
	}

	return nil
}

func (s *service) view(ctx context.Context, sid string, snapshot registration.Snapshot) *registration.View {
	view := registration.NewView(snapshot)

	if view.IsEdit || view.Step == registration.StepEstablished {
		return &view
	}

	lastLocation, err := s.state.LastLocation(ctx, sid)
	if err != nil {
		s.logger.Warn("error when reading last location", zap.Error(err))
		return &view
	}

	if lastLocation != nil && lastLocation.Pincode == snapshot.Pincode {
		view.Location = lastLocation
	}

	return &view
}
