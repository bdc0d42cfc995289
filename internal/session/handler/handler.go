package sessionhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/handlers"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	"github.com/xw1nchester/pinfinds-backend/internal/session"
	"go.uber.org/zap"
)

type State interface {
	CurrentUser(ctx context.Context, sid string) (*provider.Provider, error)
	LastLocation(ctx context.Context, sid string) (*location.Location, error)
	Logout(ctx context.Context, sid string) error
}

type SessionResponse struct {
	CurrentUser  *provider.Provider `json:"currentUser"`
	LastLocation *location.Location `json:"lastLocation"`
}

type handler struct {
	state  State
	logger *zap.Logger
}

func New(state State, logger *zap.Logger) handlers.Handler {
	return &handler{
		state:  state,
		logger: logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/session", apperror.Middleware(h.getSessionHandler))
	router.Post("/session/logout", apperror.Middleware(h.logoutHandler))
}

// @Tags		session
// @Success	200	{object}	SessionResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/session [get]
func (h *handler) getSessionHandler(w http.ResponseWriter, r *http.Request) error {
	sid := session.IDFromContext(r.Context())

	currentUser, err := h.state.CurrentUser(r.Context(), sid)
	if err != nil {
		h.logger.Error("unexpected error when reading current user", zap.Error(err))
		return err
	}

	lastLocation, err := h.state.LastLocation(r.Context(), sid)
	if err != nil {
		h.logger.Error("unexpected error when reading last location", zap.Error(err))
		return err
	}

	render.JSON(w, r, SessionResponse{
		CurrentUser:  currentUser,
		LastLocation: lastLocation,
	})

	return nil
}

// @Tags		session
// @Success	200	{object}	SessionResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/session/logout [post]
func (h *handler) logoutHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.state.Logout(r.Context(), session.IDFromContext(r.Context())); err != nil {
		h.logger.Error("unexpected error when logging out", zap.Error(err))
		return err
	}

	render.JSON(w, r, SessionResponse{})

	return nil
}
