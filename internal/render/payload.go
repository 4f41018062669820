package render

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"github.com/MKhiriev/go-retail-api/models"
)

// Payload is a rendered body together with the format it was rendered in.
type Payload struct {
	Format Format
	Body   []byte
}

// ContentType returns the Content-Type header value of p.
func (p Payload) ContentType() string {
	return p.Format.MediaType()
}

// Object renders a single value. In XML the root element is kind.Singular.
func Object(f Format, kind Kind, v any) (Payload, error) {
	if f == XML {
		root, err := elementOf(kind.Singular, reflect.ValueOf(v))
		if err != nil {
			return Payload{}, fmt.Errorf("render %s: %w", kind.Singular, err)
		}
		if root == nil {
			return Payload{}, fmt.Errorf("render %s: %w: nil %T", kind.Singular, ErrUnsupportedType, v)
		}
		return Payload{Format: XML, Body: document(root, false)}, nil
	}

	body, err := json.Marshal(v)
	if err != nil {
		return Payload{}, fmt.Errorf("render %s: %w", kind.Singular, err)
	}
	return Payload{Format: JSON, Body: body}, nil
}

// Collection renders a slice. In XML the root element is kind.Plural with
// one kind.Singular child per element. A nil slice renders as an empty
// collection.
func Collection(f Format, kind Kind, v any) (Payload, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Payload{}, fmt.Errorf("render %s: %w: got %T", kind.Plural, ErrNotCollection, v)
	}

	if f == XML {
		root := &node{name: kind.Plural}
		for i := 0; i < rv.Len(); i++ {
			child, err := elementOf(kind.Singular, rv.Index(i))
			if err != nil {
				return Payload{}, fmt.Errorf("render %s: %w", kind.Plural, err)
			}
			if child != nil {
				root.children = append(root.children, child)
			}
		}
		return Payload{Format: XML, Body: document(root, true)}, nil
	}

	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return Payload{Format: JSON, Body: []byte("[]")}, nil
	}
	body, err := json.Marshal(v)
	if err != nil {
		return Payload{}, fmt.Errorf("render %s: %w", kind.Plural, err)
	}
	return Payload{Format: JSON, Body: body}, nil
}

// Error renders the error body {message, details?}.
func Error(f Format, message string, details ...models.ErrorDetail) Payload {
	resp := models.ErrorResponse{Message: message, Details: details}

	if f == XML {
		root := &node{name: "error", attrs: []attr{{name: "message", value: message}}}
		if len(details) > 0 {
			list := &node{name: "details"}
			for _, d := range details {
				list.children = append(list.children, &node{
					name:  "detail",
					attrs: []attr{{name: "path", value: d.Path}, {name: "message", value: d.Message}},
				})
			}
			root.children = append(root.children, list)
		}
		return Payload{Format: XML, Body: document(root, false)}
	}

	// ErrorResponse holds only strings; Marshal cannot fail.
	body, _ := json.Marshal(resp)
	return Payload{Format: JSON, Body: body}
}

// Write sends p with the given status.
func Write(w http.ResponseWriter, status int, p Payload) error {
	w.Header().Set("Content-Type", p.ContentType())
	w.WriteHeader(status)
	_, err := w.Write(p.Body)
	return err
}
