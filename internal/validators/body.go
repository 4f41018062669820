package validators

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"mime"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-retail-api/models"
)

// Body decodes and validates a request body into a DTO and converts the DTO
// into the value handlers receive.
type Body struct {
	// array marks bodies whose root is a JSON array.
	array bool

	// newTarget returns the pointer the body is decoded into.
	newTarget func() any

	// subject returns the value handed to the struct validator.
	subject func(target any) any

	// normalize converts a valid target into the handler-facing value.
	normalize func(target any) any
}

// ObjectBody declares a body whose root is an object decoded into T.
func ObjectBody[T any](normalize func(*T) any) *Body {
	return &Body{
		newTarget: func() any { return new(T) },
		subject:   func(target any) any { return target },
		normalize: func(target any) any { return normalize(target.(*T)) },
	}
}

// arrayBody wraps a decoded array so the struct validator can apply the
// array-level rules and dive into the elements.
type arrayBody[T any] struct {
	Items []T `xml:"item" validate:"required,min=1,dive"`
}

// ArrayBody declares a body whose root is a non-empty array of T.
func ArrayBody[T any](normalize func([]T) any) *Body {
	return &Body{
		array:     true,
		newTarget: func() any { return new(arrayBody[T]) },
		subject:   func(target any) any { return target },
		normalize: func(target any) any { return normalize(target.(*arrayBody[T]).Items) },
	}
}

func (b *Body) decode(raw []byte, contentType string) (any, []models.ErrorDetail) {
	target := b.newTarget()

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, []models.ErrorDetail{{Path: "body", Message: msgRequired}}
	}

	var details []models.ErrorDetail
	if isXML(contentType) {
		if err := xml.Unmarshal(raw, target); err != nil {
			return nil, []models.ErrorDetail{{Path: "body", Message: msgInvalidBody}}
		}
	} else {
		var ok bool
		details, ok = b.decodeJSON(raw, target)
		if !ok {
			return nil, details
		}
	}

	// A field or element that failed to decode keeps only its decode detail.
	reported := make(map[string]struct{}, len(details))
	for _, d := range details {
		reported[d.Path] = struct{}{}
	}
	isReported := func(path string) bool {
		for p := path; ; {
			if _, ok := reported[p]; ok {
				return true
			}
			i := strings.LastIndex(p, ": ")
			if i < 0 {
				return false
			}
			p = p[:i]
		}
	}

	if err := validate.Struct(b.subject(target)); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, append(details, models.ErrorDetail{Path: "body", Message: msgInvalidBody})
		}

		root := reflect.TypeOf(target).Elem().Name()
		for _, fe := range fieldErrs {
			path := b.pathOf(root, fe.Namespace())
			if isReported(path) {
				continue
			}
			details = append(details, models.ErrorDetail{Path: path, Message: message(fe)})
		}
	}

	if len(details) > 0 {
		b.sortDetails(details, reflect.TypeOf(target).Elem())
		return nil, details
	}

	return b.normalize(target), nil
}

// decodeJSON fills target field by field so that every mistyped field is
// reported. ok is false when the body is not decodable at all.
func (b *Body) decodeJSON(raw []byte, target any) ([]models.ErrorDetail, bool) {
	expected := "object"
	if b.array {
		expected = "array"
	}
	if got := jsonRootType(raw); got != expected {
		return []models.ErrorDetail{{Path: "body", Message: "Expected " + expected + ", received " + got}}, false
	}

	dst := reflect.ValueOf(target).Elem()
	if !b.array {
		return decodeObject(raw, dst, []string{"body"})
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return []models.ErrorDetail{{Path: "body", Message: msgInvalidBody}}, false
	}

	items := dst.Field(0)
	items.Set(reflect.MakeSlice(items.Type(), len(elements), len(elements)))

	var details []models.ErrorDetail
	for i, element := range elements {
		path := []string{"body", strconv.Itoa(i)}
		elem := items.Index(i)
		if elem.Kind() != reflect.Struct {
			if d, failed := decodeValue(element, elem, path); failed {
				details = append(details, d)
			}
			continue
		}

		if got := jsonRootType(element); got != "object" {
			details = append(details, models.ErrorDetail{Path: joinPath(path...), Message: "Expected object, received " + got})
			continue
		}
		elemDetails, ok := decodeObject(element, elem, path)
		if !ok {
			return elemDetails, false
		}
		details = append(details, elemDetails...)
	}

	return details, true
}

// decodeObject decodes the members of raw into the exported fields of the
// struct dst, keyed by their json names.
func decodeObject(raw json.RawMessage, dst reflect.Value, path []string) ([]models.ErrorDetail, bool) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return []models.ErrorDetail{{Path: joinPath(path...), Message: msgInvalidBody}}, false
	}

	var details []models.ErrorDetail
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		name, ok := jsonName(t.Field(i))
		if !ok {
			continue
		}
		member, found := lookupMember(members, name)
		if !found {
			continue
		}
		if d, failed := decodeValue(member, dst.Field(i), append(path[:len(path):len(path)], name)); failed {
			details = append(details, d)
		}
	}

	return details, true
}

func decodeValue(raw json.RawMessage, dst reflect.Value, path []string) (models.ErrorDetail, bool) {
	err := json.Unmarshal(raw, dst.Addr().Interface())
	if err == nil {
		return models.ErrorDetail{}, false
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return models.ErrorDetail{Path: joinPath(path...), Message: msgInvalidBody}, true
	}
	if typeErr.Field != "" {
		path = append(path, strings.Split(typeErr.Field, ".")...)
		received, _, _ := strings.Cut(typeErr.Value, " ")
		if received == "bool" {
			received = "boolean"
		}
		return models.ErrorDetail{
			Path:    joinPath(path...),
			Message: "Expected " + jsonTypeName(typeErr.Type) + ", received " + received,
		}, true
	}

	return models.ErrorDetail{Path: joinPath(path...), Message: typeMismatch(dst.Type(), raw)}, true
}

// typeMismatch describes why raw does not fit t.
func typeMismatch(t reflect.Type, raw json.RawMessage) string {
	received := jsonRootType(raw)
	if received == "number" && isInteger(t) {
		if bytes.ContainsAny(raw, ".eE") {
			return "Expected integer, received float"
		}
		return msgIntegerRange
	}
	return "Expected " + jsonTypeName(t) + ", received " + received
}

func jsonName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() {
		return "", false
	}
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return sf.Name, true
	}
	return name, true
}

// lookupMember matches keys the way encoding/json does: exact first, then
// case-insensitive.
func lookupMember(members map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := members[name]; ok {
		return v, true
	}
	for key, v := range members {
		if strings.EqualFold(key, name) {
			return v, true
		}
	}
	return nil, false
}

// sortDetails orders details by element index and then by field declaration
// order, so decode and validation failures interleave as the client wrote them.
func (b *Body) sortDetails(details []models.ErrorDetail, targetType reflect.Type) {
	fieldType := targetType
	if b.array {
		fieldType = targetType.Field(0).Type.Elem()
	}
	for fieldType.Kind() == reflect.Pointer {
		fieldType = fieldType.Elem()
	}

	order := make(map[string]int)
	if fieldType.Kind() == reflect.Struct {
		for i := 0; i < fieldType.NumField(); i++ {
			if name, ok := jsonName(fieldType.Field(i)); ok {
				order[name] = i + 1
			}
		}
	}

	key := func(path string) (int, int) {
		segments := strings.Split(path, ": ")[1:]
		index := -1
		if b.array && len(segments) > 0 {
			if n, err := strconv.Atoi(segments[0]); err == nil {
				index = n
			}
			segments = segments[1:]
		}
		if len(segments) == 0 {
			return index, 0
		}
		return index, order[segments[0]]
	}

	sort.SliceStable(details, func(i, j int) bool {
		ii, fi := key(details[i].Path)
		ij, fj := key(details[j].Path)
		if ii != ij {
			return ii < ij
		}
		return fi < fj
	})
}

// pathOf converts a validator namespace such as "OrderDTO.customerId" or
// "arrayBody[...].Items[0].itemId" into "body: customerId" or
// "body: 0: itemId".
func (b *Body) pathOf(root, namespace string) string {
	rest := strings.TrimPrefix(namespace, root)
	rest = strings.TrimPrefix(rest, ".")

	segments := []string{"body"}
	for i, seg := range strings.Split(rest, ".") {
		if seg == "" {
			continue
		}
		name, index, hasIndex := strings.Cut(seg, "[")
		if !(b.array && i == 0) {
			segments = append(segments, name)
		}
		if hasIndex {
			segments = append(segments, strings.TrimSuffix(index, "]"))
		}
	}

	return joinPath(segments...)
}

func jsonRootType(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func isXML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/xml" || mediaType == "text/xml"
}
