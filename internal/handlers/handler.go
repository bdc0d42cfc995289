package handlers

import "github.com/go-chi/chi/v5"

// Handler mounts its routes on the shared API router.
type Handler interface {
	Register(router chi.Router)
}

func RegisterAll(router chi.Router, hs ...Handler) {
	for _, h := range hs {
		h.Register(router)
	}
}
