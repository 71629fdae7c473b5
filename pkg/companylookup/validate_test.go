package companylookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompanyData(t *testing.T) {
	active := false

	tests := []struct {
		name    string
		company Company
		want    DataQuality
	}{
		{
			name: "complete record",
			company: Company{
				ID: "c1", Name: "Acme", RegistrationNumber: "123",
				IncorporationCountry: "GB", Active: &active,
			},
			want: DataQuality{IsValid: true, MissingFields: []string{}, Warnings: []string{}},
		},
		{
			name:    "required fields only",
			company: Company{ID: "c1", Name: "Acme"},
			want: DataQuality{
				IsValid:       true,
				MissingFields: []string{},
				Warnings:      []string{"registrationNumber", "incorporationCountry", "active status"},
			},
		},
		{
			name:    "missing name",
			company: Company{ID: "c1", RegistrationNumber: "123", IncorporationCountry: "GB", Active: &active},
			want:    DataQuality{IsValid: false, MissingFields: []string{"name"}, Warnings: []string{}},
		},
		{
			name:    "empty record",
			company: Company{},
			want: DataQuality{
				IsValid:       false,
				MissingFields: []string{"id", "name"},
				Warnings:      []string{"registrationNumber", "incorporationCountry", "active status"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCompanyData(tt.company))
		})
	}
}
