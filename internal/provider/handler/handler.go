package providerhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/directory"
	"github.com/xw1nchester/pinfinds-backend/internal/handlers"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	"github.com/xw1nchester/pinfinds-backend/internal/session"
	"go.uber.org/zap"
)

var ErrLoadFailed = apperror.NewStatusError(http.StatusInternalServerError, "Failed to load user data.")

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproviderservice
type Service interface {
	ListByPincode(ctx context.Context, pincode string) ([]provider.Provider, error)
}

type SessionState interface {
	LastLocation(ctx context.Context, sid string) (*location.Location, error)
}

type DirectoryResponse struct {
	Pincode   string              `json:"pincode"`
	Location  *location.Location  `json:"location"`
	Providers []provider.Provider `json:"providers"`
	Total     int                 `json:"total"`
}

type handler struct {
	service Service
	state   SessionState
	logger  *zap.Logger
}

func New(service Service, state SessionState, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		state:   state,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/categories", apperror.Middleware(h.getCategoriesHandler))
	router.Get("/pincodes/{pincode}/providers", apperror.Middleware(h.getDirectoryHandler))
}

// @Tags		providers
// @Success	200	{object}	provider.CategoriesResponse
// @Router		/categories [get]
func (h *handler) getCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, provider.CategoriesResponse{Categories: provider.Categories()})

	return nil
}

// getDirectoryHandler lists the providers of a pincode narrowed by the filter
// query. Total is the size of the unfiltered listing.
//
// @Tags		providers
// @Success	200		{object}	DirectoryResponse
// @Failure	400,500	{object}	apperror.AppError
// @Param		pincode		path		string	true	"Pincode"
// @Param		search		query		string	false	"Name, category or contact substring"
// @Param		category	query		string	false	"Comma separated categories"
// @Param		verified	query		string	false	"true, false or all"
// @Router		/pincodes/{pincode}/providers [get]
func (h *handler) getDirectoryHandler(w http.ResponseWriter, r *http.Request) error {
	pincode := chi.URLParam(r, "pincode")

	filter, err := directory.FromQuery(r.URL.Query())
	if err != nil {
		return err
	}

	providers, err := h.service.ListByPincode(r.Context(), pincode)
	if err != nil {
		return ErrLoadFailed
	}

	// a remembered location is shown only for the pincode it belongs to
	var current *location.Location
	lastLocation, err := h.state.LastLocation(r.Context(), session.IDFromContext(r.Context()))
	if err != nil {
		h.logger.Warn("error when reading last location", zap.Error(err))
	} else if lastLocation != nil && lastLocation.Pincode == pincode {
		current = lastLocation
	}

	render.JSON(w, r, DirectoryResponse{
		Pincode:   pincode,
		Location:  current,
		Providers: directory.Apply(providers, filter),
		Total:     len(providers),
	})

	return nil
}
