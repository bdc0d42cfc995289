package uploadhandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
	"github.com/xw1nchester/pinfinds-backend/internal/handlers"
	"github.com/xw1nchester/pinfinds-backend/internal/upload"
	"go.uber.org/zap"
)

const formField = "file"

var (
	ErrFileMissing  = apperror.NewAppError("field file is a required field")
	ErrFileTooLarge = apperror.NewStatusError(http.StatusRequestEntityTooLarge, "image is too large")
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockuploadservice
type Service interface {
	UploadImage(ctx context.Context, file upload.File) (string, error)
}

type handler struct {
	service       Service
	maxUploadSize int64
	logger        *zap.Logger
}

func New(service Service, maxUploadSize int64, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:       service,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Post("/uploads/images", apperror.Middleware(h.uploadImageHandler))
}

// uploadImageHandler stores a provider image and returns its public URL for
// the imageUrl profile field.
//
//	curl http://localhost:8080/api/uploads/images -F 'file=@shop.png'
//
// @Tags		upload
// @Accept		mpfd
// @Produce	json
// @Param		file	formData	file	true	"Image"
// @Success	200		{object}	upload.ImageResponse
// @Failure	400,413	{object}	apperror.AppError
// @Router		/uploads/images [post]
func (h *handler) uploadImageHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrFileTooLarge
		}
		return ErrFileMissing
	}

	file, header, err := r.FormFile(formField)
	if err != nil {
		return ErrFileMissing
	}
	defer file.Close()

	h.logger.Debug("image received",
		zap.String("name", header.Filename),
		zap.Int64("size", header.Size),
	)

	url, err := h.service.UploadImage(r.Context(), upload.File{
		Reader:      file,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		return err
	}

	render.JSON(w, r, upload.ImageResponse{URL: url})

	return nil
}
