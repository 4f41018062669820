package render

import (
	"bytes"
	"encoding"
	"encoding/xml"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

const xmlHeader = `<?xml version="1.0"?>`

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

type attr struct {
	name  string
	value string
}

// node is one XML element. A node has either text or children, never both.
type node struct {
	name     string
	attrs    []attr
	children []*node
	text     string
	hasText  bool
}

func document(root *node, pretty bool) []byte {
	var b bytes.Buffer
	b.WriteString(xmlHeader)
	if pretty {
		b.WriteByte('\n')
	}
	root.write(&b, pretty, 0)
	return b.Bytes()
}

func (n *node) write(b *bytes.Buffer, pretty bool, depth int) {
	if pretty {
		b.WriteString(strings.Repeat("  ", depth))
	}

	b.WriteByte('<')
	b.WriteString(n.name)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		escape(b, a.value)
		b.WriteByte('"')
	}

	if len(n.children) == 0 && !n.hasText {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')

	if n.hasText {
		escape(b, n.text)
	}
	for _, c := range n.children {
		if pretty {
			b.WriteByte('\n')
		}
		c.write(b, pretty, depth+1)
	}
	if pretty && len(n.children) > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("  ", depth))
	}

	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteByte('>')
}

func escape(b *bytes.Buffer, s string) {
	// bytes.Buffer writes never fail.
	_ = xml.EscapeText(b, []byte(s))
}

// elementOf builds the element called name for v. It returns nil for nil
// pointers and interfaces.
func elementOf(name string, v reflect.Value) (*node, error) {
	v, ok := deref(v)
	if !ok {
		return nil, nil
	}

	if isScalar(v) {
		text, err := scalarText(v)
		if err != nil {
			return nil, err
		}
		return &node{name: name, text: text, hasText: true}, nil
	}

	n := &node{name: name}
	switch v.Kind() {
	case reflect.Struct:
		if err := appendFields(n, v); err != nil {
			return nil, err
		}
	case reflect.Slice, reflect.Array:
		childName := singular(name)
		for i := 0; i < v.Len(); i++ {
			child, err := elementOf(childName, v.Index(i))
			if err != nil {
				return nil, err
			}
			if child != nil {
				n.children = append(n.children, child)
			}
		}
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
		}
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) })
		for _, k := range keys {
			if err := appendValue(n, k.String(), v.MapIndex(k)); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}

	return n, nil
}

// appendFields adds the exported fields of the struct v to n, using JSON
// field names. Embedded structs without a JSON name are flattened.
func appendFields(n *node, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}

		name, opts, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}
		fv := v.Field(i)

		if sf.Anonymous && name == "" {
			inner, ok := deref(fv)
			if ok && inner.Kind() == reflect.Struct {
				if err := appendFields(n, inner); err != nil {
					return err
				}
				continue
			}
			if !sf.IsExported() {
				continue
			}
		}

		if name == "" {
			name = sf.Name
		}
		if hasOption(opts, "omitempty") && isEmpty(fv) {
			continue
		}
		if err := appendValue(n, name, fv); err != nil {
			return err
		}
	}
	return nil
}

// appendValue adds v to n as an attribute when it is a scalar and as a child
// element otherwise. Nil values are skipped.
func appendValue(n *node, name string, v reflect.Value) error {
	v, ok := deref(v)
	if !ok {
		return nil
	}
	if v.Kind() == reflect.Slice && v.IsNil() {
		return nil
	}

	if isScalar(v) {
		text, err := scalarText(v)
		if err != nil {
			return err
		}
		n.attrs = append(n.attrs, attr{name: name, value: text})
		return nil
	}

	child, err := elementOf(name, v)
	if err != nil {
		return err
	}
	n.children = append(n.children, child)
	return nil
}

func deref(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		if v.Type().Implements(textMarshalerType) {
			return v, true
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func isScalar(v reflect.Value) bool {
	if v.Type().Implements(textMarshalerType) {
		return true
	}
	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return v.Type().Elem().Kind() == reflect.Uint8
	}
	return false
}

func scalarText(v reflect.Value) (string, error) {
	if v.Type().Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	case reflect.Slice:
		return string(v.Bytes()), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	case reflect.Struct:
		return false
	}
	return v.IsZero()
}

func hasOption(opts, want string) bool {
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == want {
			return true
		}
	}
	return false
}

func singular(name string) string {
	if len(name) > 1 && strings.HasSuffix(name, "s") {
		return strings.TrimSuffix(name, "s")
	}
	return name
}
