package session

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("session key not found")

// Store persists whole serialized values per session id and key.
//
//go:generate mockgen -source=store.go -destination=mocks/mock.go -package=mocksession
type Store interface {
	Get(ctx context.Context, sid, key string) ([]byte, error)
	Set(ctx context.Context, sid, key string, value []byte) error
	Delete(ctx context.Context, sid string, keys ...string) error
}
