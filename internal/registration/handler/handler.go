package registrationhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/handlers"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	"github.com/xw1nchester/pinfinds-backend/internal/registration"
	"github.com/xw1nchester/pinfinds-backend/internal/session"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockregistrationservice
type Service interface {
	Current(ctx context.Context, sid, pincode string) (*registration.View, error)
	SubmitPhone(ctx context.Context, sid, pincode, phone string) (*registration.View, error)
	SubmitOTP(ctx context.Context, sid, pincode, code string) (*registration.View, error)
	Back(ctx context.Context, sid, pincode string) (*registration.View, error)
	SubmitProfile(ctx context.Context, sid, pincode string, fields provider.Fields) (*registration.View, error)
	Edit(ctx context.Context, sid, pincode string) (*registration.View, error)
	Cancel(ctx context.Context, sid, pincode string) (*registration.View, error)
}

type handler struct {
	service  Service
	validate *validator.Validate
	logger   *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/register/{pincode}", func(registerRouter chi.Router) {
		registerRouter.Get("/", apperror.Middleware(h.currentHandler))
		registerRouter.Delete("/", apperror.Middleware(h.cancelHandler))
		registerRouter.Post("/phone", apperror.Middleware(h.phoneHandler))
		registerRouter.Post("/otp", apperror.Middleware(h.otpHandler))
		registerRouter.Post("/back", apperror.Middleware(h.backHandler))
		registerRouter.Post("/profile", apperror.Middleware(h.profileHandler))
		registerRouter.Post("/edit", apperror.Middleware(h.editHandler))
	})
}

func params(r *http.Request) (string, string) {
	return session.IDFromContext(r.Context()), chi.URLParam(r, "pincode")
}

func (h *handler) decode(r *http.Request, dto any) error {
	if err := render.DecodeJSON(r.Body, dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := h.validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	return nil
}

// @Tags		registration
// @Success	200		{object}	registration.View
// @Failure	500		{object}	apperror.AppError
// @Param		pincode	path		string	true	"Pincode"
// @Router		/register/{pincode} [get]
func (h *handler) currentHandler(w http.ResponseWriter, r *http.Request) error {
	sid, pincode := params(r)

	view, err := h.service.Current(r.Context(), sid, pincode)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		registration
// @Success	200		{object}	registration.View
// @Failure	500		{object}	apperror.AppError
// @Param		pincode	path		string	true	"Pincode"
// @Router		/register/{pincode} [delete]
func (h *handler) cancelHandler(w http.ResponseWriter, r *http.Request) error {
	sid, pincode := params(r)

	view, err := h.service.Cancel(r.Context(), sid, pincode)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		registration
// @Accept		json
// @Produce	json
// @Param		pincode	path		string						true	"Pincode"
// @Param		request	body		registration.PhoneRequest	true	"Phone number"
// @Success	200		{object}	registration.View
// @Failure	400,409,500,502	{object}	apperror.AppError
// @Router		/register/{pincode}/phone [post]
func (h *handler) phoneHandler(w http.ResponseWriter, r *http.Request) error {
	var dto registration.PhoneRequest
	if err := h.decode(r, &dto); err != nil {
		return err
	}

	sid, pincode := params(r)

	view, err := h.service.SubmitPhone(r.Context(), sid, pincode, dto.Phone)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		registration
// @Accept		json
// @Produce	json
// @Param		pincode	path		string					true	"Pincode"
// @Param		request	body		registration.OTPRequest	true	"One time code"
// @Success	200		{object}	registration.View
// @Failure	400,409,500	{object}	apperror.AppError
// @Router		/register/{pincode}/otp [post]
func (h *handler) otpHandler(w http.ResponseWriter, r *http.Request) error {
	var dto registration.OTPRequest
	if err := h.decode(r, &dto); err != nil {
		return err
	}

	sid, pincode := params(r)

	view, err := h.service.SubmitOTP(r.Context(), sid, pincode, dto.OTP)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		registration
// @Success	200		{object}	registration.View
// @Failure	409,500	{object}	apperror.AppError
// @Param		pincode	path		string	true	"Pincode"
// @Router		/register/{pincode}/back [post]
func (h *handler) backHandler(w http.ResponseWriter, r *http.Request) error {
	sid, pincode := params(r)

	view, err := h.service.Back(r.Context(), sid, pincode)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		registration
// @Accept		json
// @Produce	json
// @Param		pincode	path		string						true	"Pincode"
// @Param		request	body		registration.ProfileRequest	true	"Profile details"
// @Success	200		{object}	registration.View
// @Failure	400,409,500,502	{object}	apperror.AppError
// @Router		/register/{pincode}/profile [post]
func (h *handler) profileHandler(w http.ResponseWriter, r *http.Request) error {
	var dto registration.ProfileRequest
	if err := h.decode(r, &dto); err != nil {
		return err
	}

	sid, pincode := params(r)

	view, err := h.service.SubmitProfile(r.Context(), sid, pincode, dto.Fields())
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}

// @Tags		registration
// @Success	200			{object}	registration.View
// @Failure	401,409,500	{object}	apperror.AppError
// @Param		pincode		path		string	true	"Pincode"
// @Router		/register/{pincode}/edit [post]
func (h *handler) editHandler(w http.ResponseWriter, r *http.Request) error {
	sid, pincode := params(r)

	view, err := h.service.Edit(r.Context(), sid, pincode)
	if err != nil {
		return err
	}

	render.JSON(w, r, view)

	return nil
}
