package concept_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/internal/core/concept"
	"github.com/taibuivan/catalog/internal/core/field"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func TestConceptField_DisplayNames(t *testing.T) {
	plain := &field.Field{Name: "Height"}
	plural := &field.Field{Name: "Child", PluralName: "Children"}

	tests := []struct {
		name       string
		link       concept.ConceptField
		wantName   string
		wantPlural string
	}{
		{"field_defaults", concept.ConceptField{Field: plain}, "Height", "Heights"},
		{"field_plural", concept.ConceptField{Field: plural}, "Child", "Children"},
		{"override_name", concept.ConceptField{Name: pointer.To("Stature"), Field: plural}, "Stature", "Statures"},
		{"override_both", concept.ConceptField{Name: pointer.To("Kid"), PluralName: pointer.To("Kiddos"), Field: plural}, "Kid", "Kiddos"},
		{"plural_only", concept.ConceptField{PluralName: pointer.To("Heights (cm)"), Field: plain}, "Height", "Heights (cm)"},
		{"empty_override", concept.ConceptField{Name: pointer.To(""), Field: plural}, "Child", "Children"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.link.AltName())
			assert.Equal(t, tt.wantPlural, tt.link.AltPluralName())
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Blood   Pressure", "blood pressure"},
		{"  \tglucose\n", "glucose"},
		{"ＡＢＣ", "abc"},
		{"café", "café"},
		{"\"heart rate\" -resting", "\"heart rate\" -resting"},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, concept.NormalizeQuery(tt.in))
		})
	}
}
