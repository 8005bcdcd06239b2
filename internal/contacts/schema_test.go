package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema(t *testing.T) {
	assert.Len(t, Schema, 13)
	assert.Equal(t, FieldFirstName, Fields()[0])
	assert.Equal(t, FieldCountry, Fields()[12])

	f, ok := ParseField("workEmail")
	assert.True(t, ok)
	assert.Equal(t, "Work Email", f.Label())

	_, ok = ParseField("fax")
	assert.False(t, ok)
	assert.Equal(t, "fax", Field("fax").Label())
}

func TestRecord_DisplayName(t *testing.T) {
	tests := []struct {
		name   string
		fields map[Field]string
		want   string
	}{
		{"full name", map[Field]string{FieldFirstName: "Rene", FieldLastName: "Barks"}, "Rene Barks"},
		{"first only", map[Field]string{FieldFirstName: "Rene"}, "Rene"},
		{"company fallback", map[Field]string{FieldCompany: "Acme"}, "Acme"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newRecord("id", tt.fields).DisplayName())
		})
	}
}

func TestRecord_Card(t *testing.T) {
	r := newRecord("id", map[Field]string{
		FieldFirstName: "Rene",
		FieldCompany:   "Acme",
		FieldCity:      "Oslo",
	})
	assert.Equal(t, "First Name: Rene\nCompany: Acme\nCity: Oslo", r.Card())
	assert.Equal(t, "", newRecord("empty", nil).Card())
}
