package providerdb

import "errors"

var (
	ErrProviderNotFound = errors.New("provider not found")
)
