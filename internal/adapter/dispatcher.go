// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/models"
)

type httpDispatcher struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPDispatcher constructs the default resty-backed [Dispatcher].
func NewHTTPDispatcher(logger *logger.Logger) Dispatcher {
	return NewHTTPDispatcherWithClient(resty.New(), logger)
}

// NewHTTPDispatcherWithClient constructs a [Dispatcher] over a caller-owned
// resty client. Tests use it to install a double transport.
func NewHTTPDispatcherWithClient(client *resty.Client, logger *logger.Logger) Dispatcher {
	return &httpDispatcher{client: client, logger: logger}
}

// Send implements [Dispatcher].
func (d *httpDispatcher) Send(ctx context.Context, spec models.RequestSpec) (models.Result, error) {
	method := strings.ToUpper(strings.TrimSpace(spec.Method))

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return models.Result{}, fmt.Errorf("%q: %w", spec.Method, ErrUnsupportedMethod)
	}

	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	req := d.client.R().SetContext(ctx)

	if method == http.MethodGet {
		if err := setQueryParams(req, spec.Payload); err != nil {
			return models.Result{}, err
		}
	} else if !spec.Payload.IsNull() {
		body, err := dynamic.EncodeCompact(spec.Payload)
		if err != nil {
			return models.Result{}, err
		}
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, spec.URL)
	if err != nil {
		return models.Result{}, &NetworkError{URL: spec.URL, Err: err}
	}

	result := models.Result{
		StatusCode: resp.StatusCode(),
		Body:       bodyText(resp.Body()),
	}

	d.logger.Debug().
		Str("method", method).
		Str("url", spec.URL).
		Int("status", result.StatusCode).
		Dur("duration", resp.Time()).
		Msg("request dispatched")

	return result, nil
}

// setQueryParams flattens a GET payload's top-level keys into query
// parameters. Only scalar values have a query form; objects and arrays are
// rejected outright.
func setQueryParams(req *resty.Request, payload dynamic.Value) error {
	if payload.IsNull() {
		return nil
	}
	obj := payload.Object()
	if obj == nil {
		return &dynamic.ConversionError{Path: "$", Err: ErrPayloadNotObject}
	}

	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)
		text, ok := queryText(value)
		if !ok {
			return &dynamic.ConversionError{Path: "$." + key, Err: ErrNestedQueryValue}
		}
		req.SetQueryParam(key, text)
	}

	return nil
}

func queryText(v dynamic.Value) (string, bool) {
	switch v.Kind() {
	case dynamic.KindNull:
		return "", true
	case dynamic.KindBool:
		if v.Bool() {
			return "true", true
		}
		return "false", true
	case dynamic.KindNumber:
		return v.Number().String(), true
	case dynamic.KindString:
		return v.Str(), true
	default:
		return "", false
	}
}

// bodyText returns the response body as text. A body that is not valid
// UTF-8 degrades to "" so a decode problem can never mask the status code.
func bodyText(body []byte) string {
	if !utf8.Valid(body) {
		return ""
	}
	return string(body)
}
