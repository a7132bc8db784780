package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
	"github.com/be1500616/zergoqrf/pkg/validation"
)

// Request bodies may implement any of these hooks. They run in the order
// Sanitize, Normalize, then struct-tag validation, then Validate.
type (
	Sanitizable  interface{ Sanitize() }
	Normalizable interface{ Normalize() }
	Validatable  interface{ Validate() error }
)

func PrepareRequest(req any) error {
	if s, ok := req.(Sanitizable); ok {
		s.Sanitize()
	}
	if n, ok := req.(Normalizable); ok {
		n.Normalize()
	}
	if err := validation.Validate(req); err != nil {
		return err
	}
	if v, ok := req.(Validatable); ok {
		return v.Validate()
	}
	return nil
}

// DecodeAndPrepare reads a JSON body into T and prepares it. When it returns
// false the error response has been written and the handler should return.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	return decodeInto[T](w, r, logger, false)
}

// DecodeOptionalAndPrepare is DecodeAndPrepare for endpoints whose body may be
// omitted; a missing body decodes to the zero T.
func DecodeOptionalAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	return decodeInto[T](w, r, logger, true)
}

func decodeInto[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, optional bool) (*T, bool) {
	req := new(T)
	if err := readBody(r.Body, req, optional); err != nil {
		reject(w, r, logger, "request body rejected", err)
		return nil, false
	}
	if err := PrepareRequest(req); err != nil {
		var domainErr *dErrors.Error
		if !errors.As(err, &domainErr) {
			err = dErrors.New(dErrors.CodeValidation, err.Error())
		}
		reject(w, r, logger, "request failed validation", err)
		return nil, false
	}
	return req, true
}

func readBody(body io.Reader, dst any, optional bool) error {
	err := json.NewDecoder(body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case optional && errors.Is(err, io.EOF):
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return dErrors.New(dErrors.CodeBadRequest, "Request body too large")
	}
	return dErrors.New(dErrors.CodeBadRequest, "Invalid request body")
}

func reject(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msg string, err error) {
	ctx := r.Context()
	logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	WriteError(w, err)
}
