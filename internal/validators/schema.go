// Package validators declares the request shapes accepted by the API and
// validates raw requests against them.
//
// A [Schema] is plain data: ordered path parameter rules, ordered query
// parameter rules and an optional body decoder. [Schema.Validate] is a pure
// function of the schema and the raw request triple; it either returns a
// normalized [Request] (values coerced to their semantic types, defaults
// applied) or a [*ValidationError] listing every rejected field.
//
// Rules are expressed as go-playground/validator tags, both for single
// parameters (via [Field]) and for body DTOs (via struct tags on the types in
// the models package).
package validators

import (
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-retail-api/models"
)

const orderStatusTag = "order_status"

// validate is shared by every schema. validator.Validate caches struct
// metadata internally and is safe for concurrent use.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(orderStatusTag, func(fl validator.FieldLevel) bool {
		return slices.Contains(models.OrderStatuses, models.OrderStatus(fl.Field().String()))
	})

	return v
}

// Raw is the unvalidated request triple.
type Raw struct {
	Params      map[string]string
	Query       url.Values
	Body        []byte
	ContentType string
}

// Schema describes the expected path parameters, query parameters and body
// of one kind of request.
type Schema struct {
	Name   string
	Params []Field
	Query  []Field
	Body   *Body
}

// Validate checks raw against the schema.
//
// Each field reports at most its first violation, but every failing field is
// reported. On success the returned [Request] holds all declared fields.
func (s *Schema) Validate(raw Raw) (Request, error) {
	req := Request{
		Schema: s.Name,
		Params: make(map[string]any, len(s.Params)),
		Query:  make(map[string]any, len(s.Query)),
	}
	var details []models.ErrorDetail

	for _, f := range s.Params {
		value, present := raw.Params[f.Name]
		normalized, msg := f.check(validate, value, present)
		if msg != "" {
			details = append(details, models.ErrorDetail{Path: joinPath("params", f.Name), Message: msg})
			continue
		}
		req.Params[f.Name] = normalized
	}

	for _, f := range s.Query {
		values, present := raw.Query[f.Name]
		var value string
		if len(values) > 0 {
			value = values[0]
		}
		normalized, msg := f.check(validate, value, present)
		if msg != "" {
			details = append(details, models.ErrorDetail{Path: joinPath("query", f.Name), Message: msg})
			continue
		}
		req.Query[f.Name] = normalized
	}

	if s.Body != nil {
		body, bodyDetails := s.Body.decode(raw.Body, raw.ContentType)
		details = append(details, bodyDetails...)
		req.Body = body
	}

	if len(details) > 0 {
		return Request{}, &ValidationError{Details: details}
	}

	return req, nil
}

func joinPath(segments ...string) string {
	return strings.Join(segments, ": ")
}
