package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

const (
	CurrentUserKey  = "currentUser"
	LastLocationKey = "lastLocation"
	RegistrationKey = "registration"
)

// State is the typed view over a Store shared by every service that reads or
// writes per-visitor data.
type State struct {
	store Store
}

func NewState(store Store) *State {
	return &State{store: store}
}

func (s *State) get(ctx context.Context, sid, key string, dest any) (bool, error) {
	raw, err := s.store.Get(ctx, sid, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode session key %s: %w", key, err)
	}

	return true, nil
}

func (s *State) set(ctx context.Context, sid, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session key %s: %w", key, err)
	}

	return s.store.Set(ctx, sid, key, raw)
}

// CurrentUser returns nil when nobody is logged in.
func (s *State) CurrentUser(ctx context.Context, sid string) (*provider.Provider, error) {
	var p provider.Provider

	ok, err := s.get(ctx, sid, CurrentUserKey, &p)
	if err != nil || !ok {
		return nil, err
	}

	return &p, nil
}

func (s *State) SetCurrentUser(ctx context.Context, sid string, p provider.Provider) error {
	return s.set(ctx, sid, CurrentUserKey, p)
}

func (s *State) ClearCurrentUser(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, sid, CurrentUserKey)
}

func (s *State) LastLocation(ctx context.Context, sid string) (*location.Location, error) {
	var l location.Location

	ok, err := s.get(ctx, sid, LastLocationKey, &l)
	if err != nil || !ok {
		return nil, err
	}

	return &l, nil
}

func (s *State) SetLastLocation(ctx context.Context, sid string, l location.Location) error {
	return s.set(ctx, sid, LastLocationKey, l)
}

func (s *State) ClearLastLocation(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, sid, LastLocationKey)
}

// Logout forgets the user and the remembered location.
func (s *State) Logout(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, sid, CurrentUserKey, LastLocationKey)
}

// RegistrationState returns nil when no wizard is in progress.
func (s *State) RegistrationState(ctx context.Context, sid string) (json.RawMessage, error) {
	raw, err := s.store.Get(ctx, sid, RegistrationKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return raw, nil
}

func (s *State) SetRegistrationState(ctx context.Context, sid string, raw json.RawMessage) error {
	return s.store.Set(ctx, sid, RegistrationKey, raw)
}

func (s *State) ClearRegistrationState(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, sid, RegistrationKey)
}
