package validators

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind is the semantic type a raw path or query value is coerced to.
type Kind int

const (
	// Integer values are parsed as base-10 int64.
	Integer Kind = iota

	// Token values are opaque identifiers kept as non-empty strings.
	Token

	// String values are kept as they arrive.
	String
)

// Field is a single path or query parameter rule: a coercion to Kind followed
// by an optional validator/v10 tag applied to the coerced value.
//
// Fields carry no state and can be shared between schemas.
type Field struct {
	Name  string
	Kind  Kind
	Rules string
}

// IntField declares an integer parameter. rules is a validator/v10 tag such
// as "gte=0" or "gt=0".
func IntField(name, rules string) Field {
	return Field{Name: name, Kind: Integer, Rules: rules}
}

// TokenField declares a required, non-empty opaque identifier.
func TokenField(name string) Field {
	return Field{Name: name, Kind: Token, Rules: "min=1"}
}

// StringField declares a plain string parameter.
func StringField(name, rules string) Field {
	return Field{Name: name, Kind: String, Rules: rules}
}

// check coerces raw according to the field kind and applies the rules.
// It returns the normalized value, or the message of the first violation.
func (f Field) check(v *validator.Validate, raw string, present bool) (any, string) {
	if !present {
		return nil, msgRequired
	}

	var value any
	switch f.Kind {
	case Integer:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, msgNotANumber
		}
		value = n
	default:
		value = raw
	}

	if f.Rules == "" {
		return value, ""
	}

	if err := v.Var(value, f.Rules); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, message(fieldErrs[0])
		}
		return nil, err.Error()
	}

	return value, ""
}
