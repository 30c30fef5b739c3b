package api

import (
	"encoding/json"
	"net/http"

	"github.com/spacepet-lab/client/pkg/errorx"
)

func (r *Response) Success() bool {
	return r.Code >= 200 && r.Code < 300
}

// ParseError translates a non-2xx response into an errorx value carrying the
// best-effort message of the body, or the status line if the body has no
// message field. It returns nil for 2xx responses.
func (r *Response) ParseError() error {
	if r.Success() {
		return nil
	}

	message := http.StatusText(r.Code)
	if body, ok := r.Body.(JSON); ok {
		if m, err := body.GetString("message"); err == nil && m != "" {
			message = m
		}
	}

	switch r.Code {
	case http.StatusBadRequest:
		return errorx.New(errorx.BadRequest, "%s", message)
	case http.StatusUnauthorized:
		return errorx.New(errorx.Unauthenticated, "%s", message)
	case http.StatusForbidden:
		return errorx.New(errorx.PermissionDenied, "%s", message)
	case http.StatusNotFound:
		return errorx.New(errorx.NotFound, "%s", message)
	case http.StatusConflict:
		return errorx.New(errorx.AlreadyExists, "%s", message)
	case http.StatusTooManyRequests:
		return errorx.New(errorx.TooManyRequests, "%s", message)
	case http.StatusServiceUnavailable:
		return errorx.New(errorx.Unavailable, "%s", message)
	default:
		return errorx.New(errorx.Internal, "%s", message)
	}
}

// Decode unmarshals the raw body into v. Callers must check ParseError first,
// error bodies are not decodable into success models.
func (r *Response) Decode(v any) error {
	if len(r.RawBody) == 0 {
		return nil
	}

	return json.Unmarshal(r.RawBody, v)
}
