// Package http is the transport seam: a router interface over chi, the server
// and the JSON envelope every endpoint replies with
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "formvoice/internal/platform/errors"
	pnet "formvoice/internal/platform/net"
)

// Envelope wraps every JSON reply. Data is set on success, Code and Error on failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style handlers produce. A Body holding an error
// is rendered as an error envelope with the status mapped from its code
type Response struct {
	Status int
	Body   any
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Status carries data with an explicit status code
func Status(code int, data any) Response { return Response{Status: code, Body: data} }

// Error maps err onto its status and envelope
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return-style handler to the router
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	env := Envelope{RequestID: pnet.RequestID(r.Context())}

	if err, ok := resp.Body.(error); ok && err != nil {
		wire := perr.WireFrom(err)
		env.StatusCode = perr.HTTPStatus(err)
		env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
	} else {
		env.StatusCode = resp.Status
		if env.StatusCode == 0 {
			env.StatusCode = stdhttp.StatusOK
		}
		if env.StatusCode == stdhttp.StatusNoContent {
			w.WriteHeader(env.StatusCode)
			return
		}
		env.Data = resp.Body
	}
	env.Status = stdhttp.StatusText(env.StatusCode)
	JSON(w, env.StatusCode, env)
}
