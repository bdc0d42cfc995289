package locationhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/handlers"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/session"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocklocationservice
type Service interface {
	Search(ctx context.Context, term string) ([]location.Location, error)
	Select(ctx context.Context, sid string, l location.Location) error
	Current(ctx context.Context, sid string) (*location.Location, error)
	Forget(ctx context.Context, sid string) error
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/locations", apperror.Middleware(h.searchHandler))
	router.Get("/session/location", apperror.Middleware(h.currentHandler))
	router.Post("/session/location", apperror.Middleware(h.selectHandler))
	router.Delete("/session/location", apperror.Middleware(h.forgetHandler))
}

// searchHandler remembers the location right away when the term resolves to a
// single post office.
//
// @Tags		location
// @Success	200		{object}	location.LocationsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Param		q		query		string	true	"Office name or pincode"
// @Router		/locations [get]
func (h *handler) searchHandler(w http.ResponseWriter, r *http.Request) error {
	locations, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return err
	}

	selected := false
	if len(locations) == 1 {
		if err := h.service.Select(r.Context(), session.IDFromContext(r.Context()), locations[0]); err != nil {
			return err
		}
		selected = true
	}

	render.JSON(w, r, location.LocationsResponse{
		Locations: locations,
		Selected:  selected,
	})

	return nil
}

// currentHandler returns the remembered location, null when there is none.
//
// @Tags		location
// @Success	200	{object}	location.LocationResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/session/location [get]
func (h *handler) currentHandler(w http.ResponseWriter, r *http.Request) error {
	current, err := h.service.Current(r.Context(), session.IDFromContext(r.Context()))
	if err != nil {
		return err
	}

	render.JSON(w, r, location.LocationResponse{Location: current})

	return nil
}

// @Tags		location
// @Accept		json
// @Produce	json
// @Param		request	body		location.LocationRequest	true	"Location to remember"
// @Success	200		{object}	location.LocationResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/session/location [post]
func (h *handler) selectHandler(w http.ResponseWriter, r *http.Request) error {
	var dto location.LocationRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	validate := validator.New()
	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if dto.Location.Pincode == "" {
		return apperror.NewAppError("field Pincode is a required field")
	}

	if err := h.service.Select(r.Context(), session.IDFromContext(r.Context()), *dto.Location); err != nil {
		return err
	}

	render.JSON(w, r, location.LocationResponse{Location: dto.Location})

	return nil
}

// @Tags		location
// @Success	200	{object}	location.LocationResponse
// @Failure	500	{object}	apperror.AppError
// @Router		/session/location [delete]
func (h *handler) forgetHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Forget(r.Context(), session.IDFromContext(r.Context())); err != nil {
		return err
	}

	render.JSON(w, r, location.LocationResponse{})

	return nil
}
