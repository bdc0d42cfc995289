package upload

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

var ErrUnsupportedImage = apperror.NewAppError("only jpg, jpeg, png, webp and gif images can be uploaded")

type File struct {
	Reader      io.Reader `json:"-"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
}

// Extension returns the lower cased extension when f is an accepted image.
func (f File) Extension() (string, error) {
	ext := strings.ToLower(filepath.Ext(f.Name))
	if !slices.Contains(imageExtensions, ext) {
		return "", ErrUnsupportedImage
	}
	return ext, nil
}

type ImageResponse struct {
	URL string `json:"url"`
}
