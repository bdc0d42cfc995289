package registration

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	"go.uber.org/zap"
)

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

var (
	ErrInvalidPhone      = apperror.NewAppError("Please enter a valid phone number.")
	ErrInvalidOTP        = apperror.NewAppError("Invalid OTP. Please try again.")
	ErrInvalidTransition = apperror.NewStatusError(http.StatusConflict, "this action is not available at the current registration step")
	ErrNotLoggedIn       = apperror.NewStatusError(http.StatusUnauthorized, "log in to edit your profile")
	ErrLookupFailed      = apperror.NewStatusError(http.StatusBadGateway, "Failed to verify phone number. Please try again.")
	ErrSendFailed        = apperror.NewStatusError(http.StatusBadGateway, "Failed to send OTP. Please try again.")
	ErrCreateFailed      = apperror.NewStatusError(http.StatusBadGateway, "Failed to add contact. Please try again.")
	ErrUpdateFailed      = apperror.NewStatusError(http.StatusBadGateway, "Failed to update contact. Please try again.")
)

//go:generate mockgen -source=machine.go -destination=mocks/mock.go -package=mockregistration
type Directory interface {
	FindByContact(ctx context.Context, contact string) (*provider.Provider, error)
	Create(ctx context.Context, pincode string, data provider.Fields) (*provider.Provider, error)
	Update(ctx context.Context, data provider.Provider) (*provider.Provider, error)
}

type Config struct {
	OTPCode       string
	DispatchDelay time.Duration
}

// Machine runs the wizard transitions. It keeps no state of its own: every
// method takes the current state and returns the next one, or the same state
// together with the error to show.
type Machine struct {
	directory Directory
	sender    Sender
	cfg       Config
	logger    *zap.Logger
}

func NewMachine(directory Directory, sender Sender, cfg Config, logger *zap.Logger) *Machine {
	return &Machine{
		directory: directory,
		sender:    sender,
		cfg:       cfg,
		logger:    logger,
	}
}

func Start() State {
	return PhoneEntry{}
}

// EditProfile skips phone verification and opens the profile form filled
// with the logged in provider's data.
func EditProfile(current *provider.Provider) (State, error) {
	if current == nil {
		return PhoneEntry{}, ErrNotLoggedIn
	}

	existing := *current

	return ProfileDetails{
		Phone:    existing.Contact,
		Form:     existing.Fields(),
		Existing: &existing,
	}, nil
}

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// SubmitPhone logs in straight away when a provider with this contact already
// exists. There is no proof that the visitor owns the number.
func (m *Machine) SubmitPhone(ctx context.Context, s State, phone string) (State, error) {
	if _, ok := s.(PhoneEntry); !ok {
		return s, ErrInvalidTransition
	}

	if !ValidPhone(phone) {
		return s, ErrInvalidPhone
	}

	existing, err := m.directory.FindByContact(ctx, phone)
	if err == nil {
		return Established{Provider: *existing}, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		m.logger.Error("unexpected error when looking up phone", zap.Error(err))
		return s, ErrLookupFailed
	}

	if err := m.wait(ctx); err != nil {
		return s, err
	}

	if err := m.sender.SendOTP(ctx, phone, m.cfg.OTPCode); err != nil {
		m.logger.Error("unexpected error when sending otp", zap.Error(err))
		return s, ErrSendFailed
	}

	return OtpVerification{Phone: phone}, nil
}

func (m *Machine) wait(ctx context.Context) error {
	if m.cfg.DispatchDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(m.cfg.DispatchDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *Machine) SubmitOTP(s State, code string) (State, error) {
	st, ok := s.(OtpVerification)
	if !ok {
		return s, ErrInvalidTransition
	}

	if code != m.cfg.OTPCode {
		return s, ErrInvalidOTP
	}

	return ProfileDetails{
		Phone: st.Phone,
		Form: provider.Fields{
			Contact:     st.Phone,
			ServiceType: provider.Shop,
			ShowContact: true,
		},
	}, nil
}

// Back returns from OTP entry to phone entry.
func (m *Machine) Back(s State) (State, error) {
	if _, ok := s.(OtpVerification); !ok {
		return s, ErrInvalidTransition
	}

	return PhoneEntry{}, nil
}

// SubmitProfile saves the form. On failure the returned state holds the
// submitted form so it can be corrected and sent again.
func (m *Machine) SubmitProfile(ctx context.Context, s State, pincode string, fields provider.Fields) (State, error) {
	st, ok := s.(ProfileDetails)
	if !ok {
		return s, ErrInvalidTransition
	}

	st.Form = fields

	if err := fields.Validate(); err != nil {
		return st, err
	}

	if st.IsEdit() {
		updated, err := m.directory.Update(ctx, st.Existing.Merge(fields))
		if err != nil {
			m.logger.Error("unexpected error when updating provider", zap.Error(err))
			return st, ErrUpdateFailed
		}

		return Established{Provider: *updated}, nil
	}

	created, err := m.directory.Create(ctx, pincode, fields)
	if err != nil {
		m.logger.Error("unexpected error when creating provider", zap.Error(err))
		return st, ErrCreateFailed
	}

	return Established{Provider: *created}, nil
}
