package http

import (
	"net/http"

	"formvoice/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a T body, calls fn and wraps its result.
// fn may return a Response to pick its own status
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return reply(fn(r, in))
	})
}

// Call is JSONHandler for endpoints without a request body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return reply(fn(r))
	})
}

func reply(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
