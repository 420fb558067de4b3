// Package bind decodes JSON request bodies and validates them with struct tags
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/logger"
)

// MaxBody caps how much of a request body is read
const MaxBody = 1 << 20

var (
	once  sync.Once
	valid *validator.Validate
	trans ut.Translator
)

// Validator returns the shared validator. Messages name fields by their json tag
func Validator() *validator.Validate {
	once.Do(func() {
		loc := en.New()
		trans, _ = ut.New(loc, loc).GetTranslator("en")

		valid = validator.New(validator.WithRequiredStructEnabled())
		valid.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(valid, trans)
		shortMessage(valid, "min", "{0} must be at least {1}")
		shortMessage(valid, "max", "{0} must be at most {1}")
	})
	return valid
}

// ParseJSON decodes one JSON object into T and validates it.
// Unknown fields, trailing data and an empty body on a write method are JSON errors;
// a failed rule is a validation error naming the field
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBody))
	if err != nil {
		return zero, perr.JSONErrf("read body: %v", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		if r.Method == http.MethodGet || r.Method == http.MethodDelete {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validator().Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(err).Msg("validator misuse")
			return zero, perr.JSONErrf("validation error")
		}
		return zero, firstViolation(err)
	}
	return dst, nil
}

// firstViolation reports the first failed rule, field attached
func firstViolation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return perr.Newf(perr.ErrorCodeValidation, "%s", err.Error())
	}
	fe := verrs[0]
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", fe.Translate(trans)), fe.Field())
}

func shortMessage(v *validator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
