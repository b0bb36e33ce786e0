package http

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/MKhiriev/taskio/internal/adapter"
	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidConfigName:         http.StatusBadRequest,
	adapter.ErrUnsupportedMethod: http.StatusBadRequest,
	adapter.ErrNestedQueryValue:  http.StatusBadRequest,
	adapter.ErrPayloadNotObject:  http.StatusBadRequest,
	adapter.ErrNetwork:           http.StatusBadGateway,
	fs.ErrNotExist:               http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var parseErr *dynamic.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadRequest
	}

	var convErr *dynamic.ConversionError
	if errors.As(err, &convErr) {
		return http.StatusBadRequest
	}

	var ioErr *store.IOError
	if errors.As(err, &ioErr) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
