package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-retail-api/models"
)

func TestField_Check(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		raw     string
		present bool
		want    any
		wantMsg string
	}{
		{name: "missing", field: IntField("skip", "gte=0"), present: false, wantMsg: "Required"},
		{name: "integer coerced", field: IntField("skip", "gte=0"), raw: "12", present: true, want: int64(12)},
		{name: "integer not a number", field: IntField("skip", "gte=0"), raw: "1.5", present: true, wantMsg: "Expected number, received nan"},
		{name: "integer below minimum", field: IntField("take", "gt=0"), raw: "0", present: true, wantMsg: "Number must be greater than 0"},
		{name: "token kept", field: TokenField("id"), raw: "abc", present: true, want: "abc"},
		{name: "token empty", field: TokenField("id"), raw: "", present: true, wantMsg: "String must contain at least 1 character(s)"},
		{name: "string without rules", field: StringField("q", ""), raw: "", present: true, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.field.check(validate, tt.raw, tt.present)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Details: []models.ErrorDetail{
		{Path: "params: id", Message: "Required"},
		{Path: "body: status", Message: "Required"},
	}}

	assert.Equal(t, "validation failed: params: id: Required; body: status: Required", err.Error())
	assert.ErrorIs(t, err, ErrValidationFailed)
}
