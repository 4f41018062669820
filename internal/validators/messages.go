package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-retail-api/models"
)

const (
	msgRequired    = "Required"
	msgNotANumber  = "Expected number, received nan"
	msgInvalidBody = "Invalid request body"

	msgIntegerRange = "Number must be a safe integer"
)

// message turns a validator/v10 field error into the client-facing text.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("Array must contain at least %s element(s)", fe.Param())
		default:
			return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
		}
	case "gte":
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", fe.Param())
	case orderStatusTag:
		return enumMessage(fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("Invalid value (%s)", fe.Tag())
	}
}

func enumMessage(received string) string {
	quoted := make([]string, 0, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		quoted = append(quoted, "'"+string(s)+"'")
	}
	return fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", strings.Join(quoted, " | "), received)
}

func isInteger(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// jsonTypeName names a Go type the way a JSON client would see it.
func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	default:
		return "object"
	}
}
