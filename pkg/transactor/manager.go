package transactor

import "context"

//go:generate mockgen -source=manager.go -destination=mocks/mock.go -package=mocktransactor
type Manager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type nopManager struct{}

// NewNopManager runs fn directly, for storages without transactions.
func NewNopManager() Manager {
	return nopManager{}
}

func (nopManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
