package companylookup

// ValidateCompanyData reports missing required fields and absent optional ones.
// It never fails and the returned slices are never nil.
func ValidateCompanyData(company Company) DataQuality {
	missing := []string{}
	warnings := []string{}

	if company.ID == "" {
		missing = append(missing, "id")
	}
	if company.Name == "" {
		missing = append(missing, "name")
	}

	if company.RegistrationNumber == "" {
		warnings = append(warnings, "registrationNumber")
	}
	if company.IncorporationCountry == "" {
		warnings = append(warnings, "incorporationCountry")
	}
	if company.Active == nil {
		warnings = append(warnings, "active status")
	}

	return DataQuality{
		IsValid:       len(missing) == 0,
		MissingFields: missing,
		Warnings:      warnings,
	}
}
