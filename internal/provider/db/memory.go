package providerdb

import (
	"context"
	"slices"
	"sync"

	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

// memoryRepository keeps a single shared listing. The pincode is accepted
// by every method but does not partition the data.
type memoryRepository struct {
	mu        sync.RWMutex
	providers []provider.Provider
	nextID    int
}

func NewMemory(seed []provider.Provider) *memoryRepository {
	r := &memoryRepository{
		providers: slices.Clone(seed),
		nextID:    1,
	}

	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}

	return r
}

func (r *memoryRepository) ListByPincode(ctx context.Context, pincode string) ([]provider.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]provider.Provider, 0, len(r.providers)), r.providers...), nil
}

func (r *memoryRepository) GetByContact(ctx context.Context, contact string) (*provider.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.Contact == contact {
			return &p, nil
		}
	}

	return nil, ErrProviderNotFound
}

func (r *memoryRepository) GetByID(ctx context.Context, id int) (*provider.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrProviderNotFound
	}

	p := r.providers[idx]
	return &p, nil
}

// Create prepends the new provider so it is listed first.
func (r *memoryRepository) Create(ctx context.Context, pincode string, data provider.Fields) (*provider.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := provider.Provider{ID: r.nextID, IsVerified: true}.Merge(data)
	r.nextID++

	r.providers = slices.Insert(r.providers, 0, p)

	return &p, nil
}

func (r *memoryRepository) Update(ctx context.Context, data provider.Provider) (*provider.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(data.ID)
	if idx < 0 {
		return nil, ErrProviderNotFound
	}

	r.providers[idx] = data

	return &data, nil
}

func (r *memoryRepository) indexOf(id int) int {
	return slices.IndexFunc(r.providers, func(p provider.Provider) bool {
		return p.ID == id
	})
}
