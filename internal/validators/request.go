package validators

import (
	"context"

	"github.com/MKhiriev/go-retail-api/models"
)

// Request is the normalized output of [Schema.Validate]. Params and Query
// hold int64 values for integer fields and string values otherwise. Body
// holds whatever the schema's body normalizer produced.
type Request struct {
	Schema string
	Params map[string]any
	Query  map[string]any
	Body   any
}

// ParamInt returns an integer path parameter.
func (r Request) ParamInt(name string) int64 {
	v, _ := r.Params[name].(int64)
	return v
}

// ParamString returns a string path parameter.
func (r Request) ParamString(name string) string {
	v, _ := r.Params[name].(string)
	return v
}

// QueryInt returns an integer query parameter.
func (r Request) QueryInt(name string) int64 {
	v, _ := r.Query[name].(int64)
	return v
}

// Paging returns the skip/take window of a paged request.
func (r Request) Paging() models.Paging {
	return models.Paging{Skip: r.QueryInt("skip"), Take: r.QueryInt("take")}
}

// BodyAs returns the normalized body as T.
func BodyAs[T any](r Request) (T, bool) {
	v, ok := r.Body.(T)
	return v, ok
}

type requestKey struct{}

// WithRequest stores a validated request in ctx.
func WithRequest(ctx context.Context, req Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// FromContext returns the validated request stored by [WithRequest].
func FromContext(ctx context.Context) (Request, bool) {
	req, ok := ctx.Value(requestKey{}).(Request)
	return req, ok
}
